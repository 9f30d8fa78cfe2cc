package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "hotelops/errors"
	"hotelops/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// BookingFilter chọn các booking có kỳ lưu trú giao với [From, To] (YYYY-MM-DD, bao gồm hai đầu).
// Chuỗi rỗng nghĩa là không giới hạn.
type BookingFilter struct {
	From     string
	To       string
	RoomName string
	Statuses []models.BookingStatus
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) ListBookings(ctx context.Context, f BookingFilter) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if f.To != "" {
		q = q.Where("check_in <= ?", f.To)
	}
	if f.From != "" {
		q = q.Where("check_out >= ?", f.From)
	}
	if f.RoomName != "" {
		q = q.Where("room_refs && ?", pq.StringArray{f.RoomName})
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}

	var bookings []models.Booking
	if err := q.Order("check_in, id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("không thể lấy danh sách booking: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("không thể lấy booking %d: %w", id, err)
	}
	return &booking, nil
}

func (r *BookingRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("không thể tạo booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) SaveBooking(ctx context.Context, b *models.Booking) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return fmt.Errorf("không thể cập nhật booking %d: %w", b.ID, err)
	}
	return nil
}
