package models

import "time"

type OperationalStatus string

const (
	OperationalAvailable   OperationalStatus = "available"
	OperationalOccupied    OperationalStatus = "occupied"
	OperationalCleaning    OperationalStatus = "cleaning"
	OperationalMaintenance OperationalStatus = "maintenance"
)

type HousekeepingStatus string

const (
	HousekeepingClean     HousekeepingStatus = "clean"
	HousekeepingDirty     HousekeepingStatus = "dirty"
	HousekeepingInspected HousekeepingStatus = "inspected"
)

// RoomStatus là hồ sơ vận hành của một phòng (1:1 theo RoomName).
// MaintenanceStart/MaintenanceEnd rỗng nghĩa là bảo trì kéo dài tới khi được hoàn tất.
type RoomStatus struct {
	ID                 uint               `json:"id" gorm:"primaryKey"`
	RoomName           string             `json:"roomName" gorm:"uniqueIndex;size:50;not null"`
	OperationalStatus  OperationalStatus  `json:"operationalStatus" gorm:"size:20;default:available"`
	HousekeepingStatus HousekeepingStatus `json:"housekeepingStatus" gorm:"size:20;default:clean"`
	MaintenanceStart   *time.Time         `json:"maintenanceStart,omitempty"`
	MaintenanceEnd     *time.Time         `json:"maintenanceEnd,omitempty"`
	MaintenanceReason  string             `json:"maintenanceReason,omitempty"`
	CleaningHistory    []CleaningRecord   `json:"cleaningHistory,omitempty" gorm:"foreignKey:RoomName;references:RoomName"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

type CleaningType string

const (
	CleaningTypeClean      CleaningType = "clean"
	CleaningTypeDirty      CleaningType = "dirty"
	CleaningTypeInspection CleaningType = "inspection"
	CleaningTypeDeepClean  CleaningType = "deep_clean"
)

// CleaningRecord chỉ được thêm mới, không sửa
type CleaningRecord struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	RoomName  string       `json:"roomName" gorm:"index;size:50;not null"`
	Date      time.Time    `json:"date" gorm:"index;not null"`
	Type      CleaningType `json:"type" gorm:"size:20"`
	StaffName string       `json:"staffName"`
	Notes     string       `json:"notes" gorm:"type:text"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"createdAt"`
}

// NewRoomStatus trả về hồ sơ mặc định khi phòng được tạo
func NewRoomStatus(roomName string) *RoomStatus {
	return &RoomStatus{
		RoomName:           roomName,
		OperationalStatus:  OperationalAvailable,
		HousekeepingStatus: HousekeepingClean,
	}
}

func (s *RoomStatus) HasMaintenanceWindow() bool {
	return s.MaintenanceStart != nil && s.MaintenanceEnd != nil
}
