package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NightAuditReport lưu snapshot báo cáo ngày sau mỗi lần audit
type NightAuditReport struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	RunID            uuid.UUID      `json:"runId" gorm:"type:uuid;index"`
	AuditDate        datatypes.Date `json:"auditDate" gorm:"uniqueIndex"`
	Report           datatypes.JSON `json:"report" gorm:"type:json"`
	NoShows          int            `json:"noShows"`
	StayOvers        int            `json:"stayOvers"`
	DoubleBookings   int            `json:"doubleBookings"`
	OccupancyPercent float64        `json:"occupancyPercent"`
	TotalRevenue     float64        `json:"totalRevenue"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
