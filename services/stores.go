package services

import (
	"context"
	"time"

	"hotelops/models"
	"hotelops/repository"
)

// Các interface lưu trữ mà service cần; repository/ cung cấp bản gorm
type RoomStore interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	CountRooms(ctx context.Context) (int, error)
	GetRoom(ctx context.Context, name string) (*models.Room, error)
	CreateRoom(ctx context.Context, room *models.Room, status *models.RoomStatus) error
}

type RoomStatusStore interface {
	ListStatuses(ctx context.Context) ([]models.RoomStatus, error)
	GetStatus(ctx context.Context, name string) (*models.RoomStatus, error)
	SaveStatus(ctx context.Context, status *models.RoomStatus) error
	AppendCleaning(ctx context.Context, status *models.RoomStatus, record *models.CleaningRecord) error
	CleaningHistory(ctx context.Context, name string, limit int) ([]models.CleaningRecord, error)
}

type BookingStore interface {
	ListBookings(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	CreateBooking(ctx context.Context, b *models.Booking) error
	SaveBooking(ctx context.Context, b *models.Booking) error
}

type LedgerStore interface {
	CreateEntry(ctx context.Context, e *models.LedgerEntry) error
	EntriesBetween(ctx context.Context, from, to time.Time) ([]models.LedgerEntry, error)
}

type AuditStore interface {
	SaveReport(ctx context.Context, report *models.NightAuditReport) error
	ReportsBetween(ctx context.Context, from, to time.Time) ([]models.NightAuditReport, error)
}

var (
	_ RoomStore       = (*repository.RoomRepository)(nil)
	_ RoomStatusStore = (*repository.RoomRepository)(nil)
	_ BookingStore    = (*repository.BookingRepository)(nil)
	_ LedgerStore     = (*repository.LedgerRepository)(nil)
	_ AuditStore      = (*repository.AuditRepository)(nil)
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
