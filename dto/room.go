package dto

import (
	"hotelops/models"
	"hotelops/services/occupancy"
)

type CreateRoomRequest struct {
	RoomName    string   `json:"roomName" binding:"required,max=50"`
	SuiteType   string   `json:"suiteType" binding:"required,oneof=standard deluxe executive presidential"`
	Floor       int      `json:"floor" binding:"gte=0"`
	Capacity    int      `json:"capacity" binding:"required,gte=1"`
	BaseRate    float64  `json:"baseRate" binding:"gte=0"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
}

// RoomGridResponse là lưới phòng của lễ tân cho một ngày
type RoomGridResponse struct {
	Date      string                          `json:"date"`
	Rooms     []occupancy.RoomView            `json:"rooms"`
	Summary   map[occupancy.DisplayStatus]int `json:"summary"`
	Conflicts []string                        `json:"conflicts,omitempty"`
}

// RoomStatusDetail gộp phòng, hồ sơ vận hành và trạng thái hiển thị trong ngày
type RoomStatusDetail struct {
	Room    models.Room             `json:"room"`
	Status  *models.RoomStatus      `json:"status"`
	View    occupancy.RoomView      `json:"view"`
	History []models.CleaningRecord `json:"history"`
}

type HousekeepingRequest struct {
	StaffName string `json:"staffName" binding:"max=100"`
	Notes     string `json:"notes" binding:"max=1000"`
	DeepClean bool   `json:"deepClean"`
}

// MaintenanceRequest: start/end có thể bỏ trống (bảo trì không thời hạn)
type MaintenanceRequest struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason" binding:"max=255"`
}
