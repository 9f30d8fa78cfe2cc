package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// SuiteType là hạng phòng bán ra
type SuiteType string

const (
	SuiteStandard     SuiteType = "standard"
	SuiteDeluxe       SuiteType = "deluxe"
	SuiteExecutive    SuiteType = "executive"
	SuitePresidential SuiteType = "presidential"
)

var validSuiteTypes = map[SuiteType]bool{
	SuiteStandard:     true,
	SuiteDeluxe:       true,
	SuiteExecutive:    true,
	SuitePresidential: true,
}

type Room struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	RoomName    string         `json:"roomName" gorm:"uniqueIndex;size:50;not null"`
	SuiteType   SuiteType      `json:"suiteType" gorm:"size:30;index"`
	Floor       int            `json:"floor"`
	Capacity    int            `json:"capacity"`
	BaseRate    float64        `json:"baseRate"`
	Amenities   datatypes.JSON `json:"amenities" gorm:"type:json"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Status      *RoomStatus    `json:"status,omitempty" gorm:"foreignKey:RoomName;references:RoomName"`
}

func (r *Room) ValidateSuiteType() error {
	if !validSuiteTypes[r.SuiteType] {
		return fmt.Errorf("invalid suiteType: %q", r.SuiteType)
	}
	return nil
}

// SameRoomName so sánh tên phòng, bỏ qua hoa thường và khoảng trắng
func SameRoomName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
