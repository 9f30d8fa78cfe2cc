package repository

import (
	"context"
	"fmt"
	"time"

	"hotelops/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// SaveReport ghi đè snapshot nếu ngày đó đã được audit
func (r *AuditRepository) SaveReport(ctx context.Context, report *models.NightAuditReport) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "audit_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"run_id", "report", "no_shows", "stay_overs", "double_bookings",
			"occupancy_percent", "total_revenue", "updated_at",
		}),
	}).Create(report).Error
	if err != nil {
		return fmt.Errorf("không thể lưu báo cáo night audit: %w", err)
	}
	return nil
}

func (r *AuditRepository) ReportsBetween(ctx context.Context, from, to time.Time) ([]models.NightAuditReport, error) {
	var reports []models.NightAuditReport
	err := r.db.WithContext(ctx).
		Where("audit_date >= ? AND audit_date <= ?", datatypes.Date(from), datatypes.Date(to)).
		Order("audit_date").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("không thể lấy báo cáo night audit: %w", err)
	}
	return reports, nil
}
