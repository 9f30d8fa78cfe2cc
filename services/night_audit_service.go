package services

import (
	"context"
	"time"

	"hotelops/commands"
	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/repository"
	"hotelops/services/logger"
	"hotelops/services/notification"
	"hotelops/services/occupancy"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NightAuditServiceOptions struct {
	Rooms    RoomStore
	Bookings BookingStore
	Reports  *ReportService
	Audits   AuditStore
	Cache    Cache
	Events   notification.Service
	Logger   logger.Logger
	Location *time.Location
}

// NightAuditService chốt sổ cuối ngày
type NightAuditService struct {
	rooms    RoomStore
	bookings BookingStore
	reports  *ReportService
	audits   AuditStore
	cache    Cache
	events   notification.Service
	logger   logger.Logger
	loc      *time.Location
}

func NewNightAuditService(opts NightAuditServiceOptions) *NightAuditService {
	return &NightAuditService{
		rooms:    opts.Rooms,
		bookings: opts.Bookings,
		reports:  opts.Reports,
		audits:   opts.Audits,
		cache:    orCache(opts.Cache),
		events:   opts.Events,
		logger:   orLogger(opts.Logger),
		loc:      orLocation(opts.Location),
	}
}

// Run audit ngày day:
//  1. tính báo cáo ngày (trước khi đổi trạng thái booking)
//  2. booking confirmed có ngày nhận phòng <= day chuyển sang no_show
//  3. booking checked_in chưa trả phòng vào ngày hôm sau chuyển sang stay_over;
//     booking stay_over trả phòng vào ngày hôm sau quay lại checked_in
//  4. lưu snapshot (ghi đè nếu ngày đã được audit) và phát sự kiện
func (s *NightAuditService) Run(ctx context.Context, day time.Time) (*dto.NightAuditResult, error) {
	day = occupancy.NormalizeDay(day.In(s.loc))
	if day.IsZero() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDate, "Ngày audit không hợp lệ", apperrors.ErrInvalidDate)
	}
	dayStr := day.Format(models.DateLayout)
	next := day.AddDate(0, 0, 1)
	s.logger.Info("bắt đầu night audit ngày %s", dayStr)

	report, err := s.reports.Compute(ctx, day)
	if err != nil {
		return nil, err
	}

	conflicts, err := s.doubleBookings(ctx, day)
	if err != nil {
		return nil, err
	}

	noShows, err := s.rollForward(ctx,
		repository.BookingFilter{To: dayStr, Statuses: []models.BookingStatus{models.BookingConfirmed}},
		nil, models.BookingNoShow)
	if err != nil {
		return nil, err
	}

	stayOvers, err := s.rollForward(ctx,
		repository.BookingFilter{From: day.AddDate(0, 0, 2).Format(models.DateLayout), To: dayStr, Statuses: []models.BookingStatus{models.BookingCheckedIn}},
		nil, models.BookingStayOver)
	if err != nil {
		return nil, err
	}

	departures, err := s.rollForward(ctx,
		repository.BookingFilter{To: dayStr, Statuses: []models.BookingStatus{models.BookingStayOver}},
		func(b *models.Booking) bool { return !occupancy.ParseDay(b.CheckOut, s.loc).After(next) },
		models.BookingCheckedIn)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(report)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Không thể mã hóa báo cáo", err)
	}
	runID := uuid.New()
	snapshot := &models.NightAuditReport{
		RunID:            runID,
		AuditDate:        datatypes.Date(day),
		Report:           datatypes.JSON(body),
		NoShows:          len(noShows),
		StayOvers:        len(stayOvers),
		DoubleBookings:   len(conflicts),
		OccupancyPercent: report.Rooms.OccupancyPercentage,
		TotalRevenue:     report.Revenue.TotalRevenue,
	}
	if err := s.audits.SaveReport(ctx, snapshot); err != nil {
		return nil, dbError("Không thể lưu báo cáo night audit", err)
	}

	invalidate(ctx, s.cache, s.logger, DailyReportCacheKey(day), DailyReportCacheKey(next))

	result := &dto.NightAuditResult{
		Date:           dayStr,
		Report:         *report,
		NoShows:        noShows,
		StayOvers:      stayOvers,
		Departures:     departures,
		DoubleBookings: conflicts,
		RunID:          runID.String(),
	}
	publish(ctx, s.events, s.logger, notification.NewEventBuilder(notification.EventNightAuditCompleted).Data(result).Build())

	s.logger.Info("night audit %s xong: occupancy %.2f%%, doanh thu %.2f, no-show %d, stay-over %d, trả phòng ngày mai %d, double booking %d",
		dayStr, report.Rooms.OccupancyPercentage, report.Revenue.TotalRevenue, len(noShows), len(stayOvers), len(departures), len(conflicts))
	return result, nil
}

// rollForward chuyển các booking khớp filter (và keep nếu có) sang target; lỗi từng booking chỉ được log
func (s *NightAuditService) rollForward(ctx context.Context, filter repository.BookingFilter, keep func(*models.Booking) bool, target models.BookingStatus) ([]uint, error) {
	bookings, err := s.bookings.ListBookings(ctx, filter)
	if err != nil {
		return nil, dbError("Không thể lấy danh sách booking", err)
	}

	ids := make([]uint, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		if keep != nil && !keep(b) {
			continue
		}
		if err := commands.NewTransitionBookingCommand(b, target, s.bookings).Execute(ctx); err != nil {
			s.logger.Error("night audit: không thể chuyển booking %s sang %s: %v", b.ReferenceCode, target, err)
			continue
		}
		ids = append(ids, b.ID)
	}
	return ids, nil
}

// doubleBookings liệt kê các phòng có nhiều hơn một booking trong ngày
func (s *NightAuditService) doubleBookings(ctx context.Context, day time.Time) ([]string, error) {
	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, dbError("Không thể lấy danh sách phòng", err)
	}
	bookings, err := bookingsOn(ctx, s.bookings, day)
	if err != nil {
		return nil, err
	}

	conflicts := []string{}
	for _, room := range rooms {
		if m := occupancy.FindActiveBooking(day, room.RoomName, bookings); m.Conflict() {
			conflicts = append(conflicts, room.RoomName)
			s.logger.Error("night audit: phòng %s có %d booking cùng ngày %s", room.RoomName, m.Count, day.Format(models.DateLayout))
		}
	}
	return conflicts, nil
}
