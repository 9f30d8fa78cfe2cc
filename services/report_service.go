package services

import (
	"context"
	"time"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/services/logger"
	"hotelops/services/occupancy"
)

const maxRangeDays = 366

type ReportServiceOptions struct {
	Rooms    RoomStore
	Bookings BookingStore
	Ledger   LedgerStore
	Audits   AuditStore
	Cache    Cache
	Logger   logger.Logger
}

// ReportService tính báo cáo vận hành ngày và đọc các snapshot night audit
type ReportService struct {
	rooms    RoomStore
	bookings BookingStore
	ledger   LedgerStore
	audits   AuditStore
	cache    Cache
	logger   logger.Logger
}

func NewReportService(opts ReportServiceOptions) *ReportService {
	return &ReportService{
		rooms:    opts.Rooms,
		bookings: opts.Bookings,
		ledger:   opts.Ledger,
		audits:   opts.Audits,
		cache:    orCache(opts.Cache),
		logger:   orLogger(opts.Logger),
	}
}

// Daily trả về báo cáo của ngày, có cache ngắn hạn
func (s *ReportService) Daily(ctx context.Context, day time.Time) (*occupancy.DailyReport, error) {
	day = occupancy.NormalizeDay(day)
	if day.IsZero() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDate, "Ngày không hợp lệ", apperrors.ErrInvalidDate)
	}

	key := DailyReportCacheKey(day)
	var cached occupancy.DailyReport
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.logger.Error("lỗi đọc cache %s: %v", key, err)
	}
	if found {
		return &cached, nil
	}

	report, err := s.Compute(ctx, day)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, report, dailyReportTTL); err != nil {
		s.logger.Error("lỗi ghi cache %s: %v", key, err)
	}
	return report, nil
}

// Compute tính báo cáo trực tiếp từ database, bỏ qua cache
func (s *ReportService) Compute(ctx context.Context, day time.Time) (*occupancy.DailyReport, error) {
	day = occupancy.NormalizeDay(day)

	bookings, err := bookingsOn(ctx, s.bookings, day)
	if err != nil {
		return nil, err
	}
	start, end := occupancy.DayBounds(day)
	entries, err := s.ledger.EntriesBetween(ctx, start, end)
	if err != nil {
		return nil, dbError("Không thể đọc sổ cái", err)
	}
	total, err := s.rooms.CountRooms(ctx)
	if err != nil {
		return nil, dbError("Không thể đếm số phòng", err)
	}

	report := occupancy.Aggregate(day, bookings, entries, total)
	return &report, nil
}

// Range trả về các snapshot night audit trong khoảng [from, to]
func (s *ReportService) Range(ctx context.Context, from, to time.Time) (*dto.RangeReportResponse, error) {
	from, to = occupancy.NormalizeDay(from), occupancy.NormalizeDay(to)
	if from.IsZero() || to.IsZero() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDate, "Khoảng ngày không hợp lệ", apperrors.ErrInvalidDate)
	}
	if to.Before(from) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", apperrors.ErrInvalidInput)
	}
	if to.Sub(from) > maxRangeDays*24*time.Hour {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Khoảng ngày tối đa là 366 ngày", apperrors.ErrInvalidInput)
	}

	reports, err := s.audits.ReportsBetween(ctx, from, to)
	if err != nil {
		return nil, dbError("Không thể lấy báo cáo night audit", err)
	}

	resp := &dto.RangeReportResponse{
		From: from.Format(models.DateLayout),
		To:   to.Format(models.DateLayout),
		Days: reports,
	}
	var occupancySum float64
	for _, r := range reports {
		resp.TotalRevenue += r.TotalRevenue
		occupancySum += r.OccupancyPercent
	}
	if len(reports) > 0 {
		resp.AverageOccupancy = occupancySum / float64(len(reports))
	}
	return resp, nil
}
