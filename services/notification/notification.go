package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Các loại sự kiện gửi cho client
const (
	EventRoomStatusChanged    = "room.status_changed"
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventLedgerEntryRecorded  = "ledger.entry_recorded"
	EventNightAuditCompleted  = "night_audit.completed"
)

type Event struct {
	Type     string      `json:"type"`
	RoomName string      `json:"roomName,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	At       time.Time   `json:"at"`
}

type Service interface {
	Publish(ctx context.Context, event Event) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

// Publish broadcast sự kiện tới mọi websocket session
func (s *MelodyService) Publish(_ context.Context, event Event) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.m.Broadcast(body)
}

// Fanout gửi sự kiện tới nhiều kênh, lỗi của từng kênh được gộp lại
type Fanout []Service

func (f Fanout) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, s := range f {
		if s == nil {
			continue
		}
		if err := s.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type EventBuilder struct {
	event Event
}

func NewEventBuilder(eventType string) *EventBuilder {
	return &EventBuilder{event: Event{Type: eventType}}
}

func (b *EventBuilder) Room(name string) *EventBuilder {
	b.event.RoomName = name
	return b
}

func (b *EventBuilder) Data(data interface{}) *EventBuilder {
	b.event.Data = data
	return b
}

func (b *EventBuilder) Build() Event {
	if b.event.At.IsZero() {
		b.event.At = time.Now()
	}
	return b.event
}
