package services

import (
	"context"
	"errors"
	"time"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/repository"
	"hotelops/services/logger"
	"hotelops/services/occupancy"
)

const roomHistoryLimit = 20

type FrontDeskServiceOptions struct {
	Rooms    RoomStore
	Statuses RoomStatusStore
	Bookings BookingStore
	Cache    Cache
	Logger   logger.Logger
}

// FrontDeskService dựng lưới phòng cho lễ tân
type FrontDeskService struct {
	rooms    RoomStore
	statuses RoomStatusStore
	bookings BookingStore
	cache    Cache
	logger   logger.Logger
}

func NewFrontDeskService(opts FrontDeskServiceOptions) *FrontDeskService {
	return &FrontDeskService{
		rooms:    opts.Rooms,
		statuses: opts.Statuses,
		bookings: opts.Bookings,
		cache:    orCache(opts.Cache),
		logger:   orLogger(opts.Logger),
	}
}

// loadStatuses đọc trạng thái phòng qua cache rooms:statuses
func (s *FrontDeskService) loadStatuses(ctx context.Context) ([]models.RoomStatus, error) {
	var statuses []models.RoomStatus
	found, err := s.cache.Get(ctx, RoomStatusesCacheKey, &statuses)
	if err != nil {
		s.logger.Error("lỗi đọc cache %s: %v", RoomStatusesCacheKey, err)
	}
	if found {
		return statuses, nil
	}

	statuses, err = s.statuses.ListStatuses(ctx)
	if err != nil {
		return nil, dbError("Không thể lấy trạng thái phòng", err)
	}
	if err := s.cache.Set(ctx, RoomStatusesCacheKey, statuses, roomStatusesTTL); err != nil {
		s.logger.Error("lỗi ghi cache %s: %v", RoomStatusesCacheKey, err)
	}
	return statuses, nil
}

// bookingsOn lấy các booking có kỳ lưu trú chạm tới ngày day (kể cả ngày trả phòng).
// Booking stay_over mà ngày trả phòng là day được coi là checked_in để phòng vẫn hiện due out.
func bookingsOn(ctx context.Context, store BookingStore, day time.Time) ([]models.Booking, error) {
	d := day.Format(models.DateLayout)
	bookings, err := store.ListBookings(ctx, repository.BookingFilter{From: d, To: d})
	if err != nil {
		return nil, dbError("Không thể lấy danh sách booking", err)
	}
	for i := range bookings {
		b := &bookings[i]
		if b.Status == models.BookingStayOver && occupancy.SameDay(occupancy.ParseDay(b.CheckOut, day.Location()), day) {
			b.Status = models.BookingCheckedIn
		}
	}
	return bookings, nil
}

// RoomGrid trả về trạng thái hiển thị của mọi phòng trong ngày.
// filter rỗng nghĩa là không lọc; summary luôn tính trên toàn bộ phòng.
func (s *FrontDeskService) RoomGrid(ctx context.Context, day time.Time, filter occupancy.DisplayStatus) (*dto.RoomGridResponse, error) {
	if filter != "" && !filter.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Trạng thái lọc không hợp lệ: "+string(filter), nil)
	}
	day = occupancy.NormalizeDay(day)

	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		return nil, dbError("Không thể lấy danh sách phòng", err)
	}
	statuses, err := s.loadStatuses(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := bookingsOn(ctx, s.bookings, day)
	if err != nil {
		return nil, err
	}

	views := occupancy.ResolveGrid(day, rooms, statuses, bookings)

	var conflicts []string
	for _, v := range views {
		if v.Conflict {
			conflicts = append(conflicts, v.RoomName)
			s.logger.Error("phát hiện double booking: phòng %s ngày %s, dùng booking %d",
				v.RoomName, day.Format(models.DateLayout), v.Booking.ID)
		}
	}

	summary := occupancy.Summarize(views)
	if filter != "" {
		views = occupancy.FilterByStatus(views, filter)
	}

	return &dto.RoomGridResponse{
		Date:      day.Format(models.DateLayout),
		Rooms:     views,
		Summary:   summary,
		Conflicts: conflicts,
	}, nil
}

// RoomDetail trả về hồ sơ và trạng thái hiển thị của một phòng
func (s *FrontDeskService) RoomDetail(ctx context.Context, name string, day time.Time) (*dto.RoomStatusDetail, error) {
	day = occupancy.NormalizeDay(day)

	room, err := s.rooms.GetRoom(ctx, name)
	if errors.Is(err, apperrors.ErrRoomNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Không tìm thấy phòng "+name, err)
	}
	if err != nil {
		return nil, dbError("Không thể lấy phòng", err)
	}

	status, err := s.statuses.GetStatus(ctx, room.RoomName)
	if err != nil && !errors.Is(err, apperrors.ErrRoomStatusNotFound) {
		return nil, dbError("Không thể lấy trạng thái phòng", err)
	}

	bookings, err := bookingsOn(ctx, s.bookings, day)
	if err != nil {
		return nil, err
	}

	history, err := s.statuses.CleaningHistory(ctx, room.RoomName, roomHistoryLimit)
	if err != nil {
		return nil, dbError("Không thể lấy lịch sử dọn phòng", err)
	}

	view := occupancy.ResolveRoom(day, *room, status, bookings)
	if view.Conflict {
		s.logger.Error("phát hiện double booking: phòng %s ngày %s", room.RoomName, day.Format(models.DateLayout))
	}

	return &dto.RoomStatusDetail{
		Room:    *room,
		Status:  status,
		View:    view,
		History: history,
	}, nil
}
