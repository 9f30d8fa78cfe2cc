package controllers

import (
	"strconv"
	"time"

	"hotelops/validator"

	"github.com/gin-gonic/gin"
)

// dayParam đọc ngày từ query, mặc định là hôm nay theo giờ khách sạn
func dayParam(c *gin.Context, name string, loc *time.Location) (time.Time, error) {
	value := c.Query(name)
	if value == "" {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	}
	return validator.ParseDate(value, loc)
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func intQuery(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

// fail đẩy lỗi cho middleware.ErrorHandler
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
