package services

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/repository"
	"hotelops/services/notification"
)

// memStore là bản in-memory của mọi store, dùng chung cho các test service
type memStore struct {
	mu       sync.Mutex
	rooms    []models.Room
	statuses map[string]*models.RoomStatus
	history  []models.CleaningRecord
	bookings []models.Booking
	entries  []models.LedgerEntry
	audits   map[string]models.NightAuditReport
	nextID   uint
}

func newMemStore() *memStore {
	return &memStore{
		statuses: map[string]*models.RoomStatus{},
		audits:   map[string]models.NightAuditReport{},
	}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) addRoom(name string) {
	m.rooms = append(m.rooms, models.Room{ID: m.id(), RoomName: name, SuiteType: models.SuiteStandard, Capacity: 2})
	m.statuses[roomKeyForTest(name)] = models.NewRoomStatus(name)
}

func (m *memStore) addBooking(b models.Booking) *models.Booking {
	b.ID = m.id()
	if b.ReferenceCode == "" {
		b.ReferenceCode = "BK-TEST" + string(rune('A'+b.ID))
	}
	m.bookings = append(m.bookings, b)
	return &m.bookings[len(m.bookings)-1]
}

func (m *memStore) booking(id uint) models.Booking {
	for _, b := range m.bookings {
		if b.ID == id {
			return b
		}
	}
	return models.Booking{}
}

func roomKeyForTest(name string) string {
	return normalizeInput(name)
}

func (m *memStore) ListRooms(context.Context) ([]models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Room(nil), m.rooms...), nil
}

func (m *memStore) CountRooms(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rooms), nil
}

func (m *memStore) GetRoom(_ context.Context, name string) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rooms {
		if models.SameRoomName(r.RoomName, name) {
			room := r
			return &room, nil
		}
	}
	return nil, apperrors.ErrRoomNotFound
}

func (m *memStore) CreateRoom(_ context.Context, room *models.Room, status *models.RoomStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	room.ID = m.id()
	m.rooms = append(m.rooms, *room)
	m.statuses[roomKeyForTest(room.RoomName)] = status
	return nil
}

func (m *memStore) ListStatuses(context.Context) ([]models.RoomStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.RoomStatus, 0, len(m.statuses))
	for _, s := range m.statuses {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomName < out[j].RoomName })
	return out, nil
}

func (m *memStore) GetStatus(_ context.Context, name string) (*models.RoomStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.statuses[roomKeyForTest(name)]
	if !ok {
		return nil, apperrors.ErrRoomStatusNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memStore) SaveStatus(_ context.Context, s *models.RoomStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.statuses[roomKeyForTest(s.RoomName)] = &cp
	return nil
}

func (m *memStore) AppendCleaning(ctx context.Context, s *models.RoomStatus, rec *models.CleaningRecord) error {
	if err := m.SaveStatus(ctx, s); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = m.id()
	m.history = append(m.history, *rec)
	return nil
}

func (m *memStore) CleaningHistory(_ context.Context, name string, limit int) ([]models.CleaningRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.CleaningRecord
	for i := len(m.history) - 1; i >= 0; i-- {
		if models.SameRoomName(m.history[i].RoomName, name) {
			out = append(out, m.history[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) ListBookings(_ context.Context, f repository.BookingFilter) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.bookings {
		if f.To != "" && b.CheckIn > f.To {
			continue
		}
		if f.From != "" && b.CheckOut < f.From {
			continue
		}
		if f.RoomName != "" && !b.References(f.RoomName) {
			continue
		}
		if len(f.Statuses) > 0 {
			ok := false
			for _, st := range f.Statuses {
				if b.Status == st {
					ok = true
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *memStore) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			cp := b
			return &cp, nil
		}
	}
	return nil, apperrors.ErrBookingNotFound
}

func (m *memStore) CreateBooking(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = m.id()
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memStore) SaveBooking(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == b.ID {
			m.bookings[i] = *b
			return nil
		}
	}
	return apperrors.ErrBookingNotFound
}

func (m *memStore) CreateEntry(_ context.Context, e *models.LedgerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = m.id()
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memStore) EntriesBetween(_ context.Context, from, to time.Time) ([]models.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.LedgerEntry
	for _, e := range m.entries {
		if !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) SaveReport(_ context.Context, r *models.NightAuditReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := time.Time(r.AuditDate).Format(models.DateLayout)
	if prev, ok := m.audits[key]; ok {
		r.ID = prev.ID
	} else {
		r.ID = m.id()
	}
	m.audits[key] = *r
	return nil
}

func (m *memStore) ReportsBetween(_ context.Context, from, to time.Time) ([]models.NightAuditReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.NightAuditReport
	for _, r := range m.audits {
		d := time.Time(r.AuditDate)
		if !d.Before(from) && !d.After(to) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return time.Time(out[i].AuditDate).Before(time.Time(out[j].AuditDate)) })
	return out, nil
}

// eventRecorder ghi lại các sự kiện đã phát
type eventRecorder struct {
	mu     sync.Mutex
	events []notification.Event
}

func (r *eventRecorder) Publish(_ context.Context, e notification.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *eventRecorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func day(s string) time.Time {
	t, err := time.ParseInLocation(models.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}
