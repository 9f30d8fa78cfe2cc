package services

import (
	"context"
	"strings"
	"time"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/services/logger"
	"hotelops/services/notification"
	"hotelops/services/occupancy"
	"hotelops/validator"
)

type LedgerServiceOptions struct {
	Ledger   LedgerStore
	Cache    Cache
	Events   notification.Service
	Logger   logger.Logger
	Location *time.Location
}

// LedgerService ghi và đọc sổ cái thu/chi
type LedgerService struct {
	ledger LedgerStore
	cache  Cache
	events notification.Service
	logger logger.Logger
	loc    *time.Location
}

func NewLedgerService(opts LedgerServiceOptions) *LedgerService {
	return &LedgerService{
		ledger: opts.Ledger,
		cache:  orCache(opts.Cache),
		events: opts.Events,
		logger: orLogger(opts.Logger),
		loc:    orLocation(opts.Location),
	}
}

// entryTime giữ nguyên giờ nếu có (RFC3339), nếu chỉ có ngày thì lấy 00:00
func (s *LedgerService) entryTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(value)); err == nil {
		return t.In(s.loc), nil
	}
	return validator.ParseDate(value, s.loc)
}

func (s *LedgerService) Record(ctx context.Context, req dto.CreateLedgerEntryRequest) (*models.LedgerEntry, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	at, err := s.entryTime(req.Date)
	if err != nil {
		return nil, err
	}

	entry := &models.LedgerEntry{
		EntryType:   models.EntryType(req.EntryType),
		Category:    strings.TrimSpace(req.Category),
		Amount:      req.Amount,
		Date:        at,
		BookingID:   req.BookingID,
		Description: req.Description,
	}
	if err := validator.ValidateLedgerEntry(entry); err != nil {
		return nil, err
	}

	if err := s.ledger.CreateEntry(ctx, entry); err != nil {
		return nil, dbError("Không thể ghi sổ cái", err)
	}

	invalidate(ctx, s.cache, s.logger, DailyReportCacheKey(at))
	publish(ctx, s.events, s.logger, notification.NewEventBuilder(notification.EventLedgerEntryRecorded).Data(entry).Build())
	s.logger.Debug("ghi sổ cái %s %s %.2f", entry.EntryType, entry.Category, entry.Amount)
	return entry, nil
}

// List trả về bút toán từ đầu ngày from tới hết ngày to
func (s *LedgerService) List(ctx context.Context, from, to time.Time) ([]models.LedgerEntry, error) {
	start, _ := occupancy.DayBounds(from)
	_, end := occupancy.DayBounds(to)
	if start.IsZero() || end.IsZero() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidDate, "Khoảng ngày không hợp lệ", apperrors.ErrInvalidDate)
	}
	if end.Before(start) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	entries, err := s.ledger.EntriesBetween(ctx, start, end)
	if err != nil {
		return nil, dbError("Không thể đọc sổ cái", err)
	}
	return entries, nil
}
