package config

import (
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const DefaultTimezone = "Asia/Ho_Chi_Minh"

// Loc là múi giờ khách sạn, dùng để xác định ranh giới ngày
var Loc = time.Local

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadLocation đọc HOTEL_TIMEZONE, lỗi thì giữ giờ hệ thống
func LoadLocation() *time.Location {
	name := GetEnvDefault("HOTEL_TIMEZONE", DefaultTimezone)
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Warning: invalid HOTEL_TIMEZONE %q, using local time: %v", name, err)
		return time.Local
	}
	Loc = loc
	return loc
}
