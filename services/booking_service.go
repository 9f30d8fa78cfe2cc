package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelops/builders"
	"hotelops/commands"
	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/repository"
	"hotelops/services/logger"
	"hotelops/services/notification"
	"hotelops/services/occupancy"
	"hotelops/validator"
)

const (
	defaultSearchLimit = 20
	// số ngày tối đa xóa cache báo cáo khi một booking thay đổi
	maxInvalidatedDays = 62
)

// Housekeeper nhận thông báo khi phòng cần dọn sau check-out
type Housekeeper interface {
	MarkDirty(ctx context.Context, name string, req dto.HousekeepingRequest) (*models.RoomStatus, error)
}

type BookingServiceOptions struct {
	Bookings     BookingStore
	Rooms        RoomStore
	Housekeeping Housekeeper
	Cache        Cache
	Events       notification.Service
	Logger       logger.Logger
	Location     *time.Location
}

type BookingService struct {
	bookings     BookingStore
	rooms        RoomStore
	housekeeping Housekeeper
	cache        Cache
	events       notification.Service
	logger       logger.Logger
	loc          *time.Location
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		bookings:     opts.Bookings,
		rooms:        opts.Rooms,
		housekeeping: opts.Housekeeping,
		cache:        orCache(opts.Cache),
		events:       opts.Events,
		logger:       orLogger(opts.Logger),
		loc:          orLocation(opts.Location),
	}
}

// resolveRooms đổi tên phòng nhập vào thành tên chuẩn, gợi ý tên gần nhất nếu không có
func (s *BookingService) resolveRooms(ctx context.Context, refs []string) ([]string, error) {
	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, dbError("Không thể lấy danh sách phòng", err)
	}

	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		found := ""
		for _, r := range rooms {
			if models.SameRoomName(r.RoomName, ref) {
				found = r.RoomName
				break
			}
		}
		if found == "" {
			msg := "Không tìm thấy phòng " + strings.TrimSpace(ref)
			if hint := suggestRoom(ref, rooms); hint != "" {
				msg += ", có phải ý bạn là " + hint + "?"
			}
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, msg, apperrors.ErrRoomNotFound)
		}
		names = append(names, found)
	}
	return names, nil
}

// checkOverlap từ chối booking chồng đêm với booking đang hoạt động của cùng phòng
func (s *BookingService) checkOverlap(ctx context.Context, b *models.Booking, in, out time.Time) error {
	existing, err := s.bookings.ListBookings(ctx, repository.BookingFilter{
		From: b.CheckIn,
		To:   b.CheckOut,
	})
	if err != nil {
		return dbError("Không thể kiểm tra phòng trống", err)
	}

	for i := range existing {
		other := &existing[i]
		if other.ID == b.ID || other.IsInactive() {
			continue
		}
		otherIn := occupancy.ParseDay(other.CheckIn, s.loc)
		otherOut := occupancy.ParseDay(other.CheckOut, s.loc)
		if !occupancy.Overlaps(in, out, otherIn, otherOut) {
			continue
		}
		for _, room := range b.RoomRefs {
			if other.References(room) {
				msg := fmt.Sprintf("Phòng %s đã có booking %s từ %s đến %s", room, other.ReferenceCode, other.CheckIn, other.CheckOut)
				return apperrors.NewAppError(apperrors.ErrCodeBookingConflict, msg, apperrors.ErrBookingConflict)
			}
		}
	}
	return nil
}

// Create tạo booking mới (confirmed, checked_in hoặc maintenance)
func (s *BookingService) Create(ctx context.Context, req dto.CreateBookingRequest) (*models.Booking, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	in, out, err := validator.ValidateStayDates(req.CheckIn, req.CheckOut, s.loc)
	if err != nil {
		return nil, err
	}

	rooms, err := s.resolveRooms(ctx, req.RoomRefs)
	if err != nil {
		return nil, err
	}

	booking := builders.NewBookingBuilder().
		WithRooms(rooms...).
		WithStay(in.Format(models.DateLayout), out.Format(models.DateLayout)).
		WithStatus(models.BookingStatus(req.Status)).
		WithGuests(req.Adults, req.Children).
		WithGuestInfo(req.GuestName, req.GuestPhone, req.GuestEmail).
		WithTotalPrice(req.TotalPrice).
		WithNotes(req.Notes).
		Build()

	if err := validator.ValidateBooking(booking, s.loc); err != nil {
		return nil, err
	}
	if err := s.checkOverlap(ctx, booking, in, out); err != nil {
		return nil, err
	}

	if err := commands.NewCreateBookingCommand(booking, s.bookings).Execute(ctx); err != nil {
		return nil, dbError("Không thể tạo booking", err)
	}

	s.invalidateStay(ctx, in, out)
	publish(ctx, s.events, s.logger, notification.NewEventBuilder(notification.EventBookingCreated).Data(booking).Build())
	s.logger.Info("đã tạo booking %s cho phòng %v (%s - %s)", booking.ReferenceCode, []string(booking.RoomRefs), booking.CheckIn, booking.CheckOut)
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id uint) (*models.Booking, error) {
	b, err := s.bookings.GetBooking(ctx, id)
	if errors.Is(err, apperrors.ErrBookingNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeBookingNotFound, fmt.Sprintf("Không tìm thấy booking %d", id), err)
	}
	if err != nil {
		return nil, dbError("Không thể lấy booking", err)
	}
	return b, nil
}

// ChangeStatus chuyển trạng thái booking qua state machine.
// Check-out đánh dấu các phòng của booking là cần dọn.
func (s *BookingService) ChangeStatus(ctx context.Context, id uint, req dto.UpdateBookingStatusRequest) (*models.Booking, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := b.Status
	target := models.BookingStatus(req.Status)
	err = commands.NewTransitionBookingCommand(b, target, s.bookings).Execute(ctx)
	if errors.Is(err, models.ErrInvalidTransition) {
		msg := fmt.Sprintf("Không thể chuyển booking %s từ %s sang %s", b.ReferenceCode, from, target)
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidTransition, msg, err)
	}
	if err != nil {
		return nil, dbError("Không thể cập nhật booking", err)
	}

	if target == models.BookingCheckedOut && s.housekeeping != nil {
		for _, room := range b.RoomRefs {
			note := dto.HousekeepingRequest{StaffName: "front desk", Notes: "check-out " + b.ReferenceCode}
			if _, err := s.housekeeping.MarkDirty(ctx, room, note); err != nil {
				s.logger.Error("không thể đánh dấu phòng %s cần dọn: %v", room, err)
			}
		}
	}

	s.invalidateStay(ctx, occupancy.ParseDay(b.CheckIn, s.loc), occupancy.ParseDay(b.CheckOut, s.loc))
	publish(ctx, s.events, s.logger, notification.NewEventBuilder(notification.EventBookingStatusChanged).
		Data(map[string]interface{}{"id": b.ID, "referenceCode": b.ReferenceCode, "from": from, "to": b.Status}).
		Build())
	s.logger.Info("booking %s: %s -> %s", b.ReferenceCode, from, b.Status)
	return b, nil
}

// List lọc booking theo khoảng ngày, phòng và trạng thái
func (s *BookingService) List(ctx context.Context, q dto.BookingListQuery) (dto.PaginatedResponse[[]models.Booking], error) {
	var empty dto.PaginatedResponse[[]models.Booking]
	filter := repository.BookingFilter{RoomName: strings.TrimSpace(q.Room)}

	if q.From != "" {
		d, err := validator.ParseDate(q.From, s.loc)
		if err != nil {
			return empty, err
		}
		filter.From = d.Format(models.DateLayout)
	}
	if q.To != "" {
		d, err := validator.ParseDate(q.To, s.loc)
		if err != nil {
			return empty, err
		}
		filter.To = d.Format(models.DateLayout)
	}
	if q.Status != "" {
		st := models.BookingStatus(q.Status)
		if !isKnownBookingStatus(st) {
			return empty, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Trạng thái booking không hợp lệ: "+q.Status, nil)
		}
		filter.Statuses = []models.BookingStatus{st}
	}

	bookings, err := s.bookings.ListBookings(ctx, filter)
	if err != nil {
		return empty, dbError("Không thể lấy danh sách booking", err)
	}
	return dto.Paginate(bookings, q.Page, q.Limit), nil
}

// Search tìm booking theo tên khách (không dấu, gần đúng), số điện thoại hoặc mã tham chiếu
func (s *BookingService) Search(ctx context.Context, query string, limit int) ([]dto.BookingSearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Từ khóa tìm kiếm không được để trống", nil)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	bookings, err := s.bookings.ListBookings(ctx, repository.BookingFilter{})
	if err != nil {
		return nil, dbError("Không thể lấy danh sách booking", err)
	}

	ranked := rankGuests(query, bookings)
	results := make([]dto.BookingSearchResult, 0, min(len(ranked), limit))
	for _, r := range ranked {
		if len(results) == limit {
			break
		}
		results = append(results, dto.BookingSearchResult{Booking: r.booking, Score: r.score})
	}
	return results, nil
}

// invalidateStay xóa cache báo cáo của các ngày từ check-in tới check-out
func (s *BookingService) invalidateStay(ctx context.Context, in, out time.Time) {
	if in.IsZero() || out.IsZero() {
		return
	}
	var keys []string
	for d := in; !d.After(out) && len(keys) < maxInvalidatedDays; d = d.AddDate(0, 0, 1) {
		keys = append(keys, DailyReportCacheKey(d))
	}
	invalidate(ctx, s.cache, s.logger, keys...)
}

func isKnownBookingStatus(st models.BookingStatus) bool {
	switch st {
	case models.BookingConfirmed, models.BookingCheckedIn, models.BookingStayOver, models.BookingMaintenance,
		models.BookingCancelled, models.BookingNoShow, models.BookingCheckedOut:
		return true
	}
	return false
}
