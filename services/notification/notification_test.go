package notification

import (
	"context"
	"errors"
	"testing"
)

type recorder struct {
	events []Event
	err    error
}

func (r *recorder) Publish(_ context.Context, e Event) error {
	r.events = append(r.events, e)
	return r.err
}

func TestFanoutDeliversToEveryService(t *testing.T) {
	a := &recorder{}
	b := &recorder{err: errors.New("broker down")}
	c := &recorder{}

	event := NewEventBuilder(EventRoomStatusChanged).Room("101").Data(map[string]string{"status": "dirty"}).Build()
	err := Fanout{a, b, nil, c}.Publish(context.Background(), event)
	if err == nil {
		t.Fatal("expected joined error from failing service")
	}
	if len(a.events) != 1 || len(b.events) != 1 || len(c.events) != 1 {
		t.Fatalf("deliveries = %d/%d/%d, want 1/1/1", len(a.events), len(b.events), len(c.events))
	}
	if a.events[0].RoomName != "101" || a.events[0].At.IsZero() {
		t.Fatalf("event = %+v", a.events[0])
	}
}

func TestMelodyServiceNil(t *testing.T) {
	if err := NewMelodyService(nil).Publish(context.Background(), Event{}); err == nil {
		t.Fatal("expected error for nil melody")
	}
}
