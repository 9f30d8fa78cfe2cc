package services

import (
	"context"
	"testing"
	"time"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/services/notification"

	"gorm.io/datatypes"
)

func datatypesDate(t time.Time) datatypes.Date { return datatypes.Date(t) }

func TestLedgerRecordAndList(t *testing.T) {
	m := newMemStore()
	events := &eventRecorder{}
	svc := NewLedgerService(LedgerServiceOptions{Ledger: m, Events: events, Location: time.UTC})
	ctx := context.Background()

	e, err := svc.Record(ctx, dto.CreateLedgerEntryRequest{EntryType: "income", Category: " Room Charge ", Amount: 120, Date: "2025-06-03"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if e.Category != models.CategoryRoomCharge || !e.Date.Equal(day("2025-06-03")) {
		t.Errorf("entry = %+v", e)
	}

	e, err = svc.Record(ctx, dto.CreateLedgerEntryRequest{EntryType: "expense", Category: "Laundry", Amount: 30, Date: "2025-06-03T22:15:00+07:00"})
	if err != nil {
		t.Fatalf("Record with timestamp: %v", err)
	}
	if want := time.Date(2025, 6, 3, 15, 15, 0, 0, time.UTC); !e.Date.Equal(want) {
		t.Errorf("date = %v, want %v", e.Date, want)
	}

	entries, err := svc.List(ctx, day("2025-06-03"), day("2025-06-03"))
	if err != nil || len(entries) != 2 {
		t.Fatalf("List = %d entries, err = %v", len(entries), err)
	}
	if _, err := svc.List(ctx, day("2025-06-04"), day("2025-06-03")); codeOf(err) != apperrors.ErrCodeValidation {
		t.Fatalf("inverted window: err = %v", err)
	}

	if got := events.types(); len(got) != 2 || got[0] != notification.EventLedgerEntryRecorded {
		t.Errorf("events = %v", got)
	}
}

func TestLedgerRecordValidation(t *testing.T) {
	svc := NewLedgerService(LedgerServiceOptions{Ledger: newMemStore(), Location: time.UTC})
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.CreateLedgerEntryRequest
		code apperrors.ErrorCode
	}{
		{"negative amount", dto.CreateLedgerEntryRequest{EntryType: "income", Category: "Tax", Amount: -1, Date: "2025-06-03"}, apperrors.ErrCodeValidation},
		{"bad type", dto.CreateLedgerEntryRequest{EntryType: "refund", Category: "Tax", Amount: 1, Date: "2025-06-03"}, apperrors.ErrCodeValidation},
		{"missing category", dto.CreateLedgerEntryRequest{EntryType: "income", Amount: 1, Date: "2025-06-03"}, apperrors.ErrCodeValidation},
		{"blank category", dto.CreateLedgerEntryRequest{EntryType: "income", Category: "   ", Amount: 1, Date: "2025-06-03"}, apperrors.ErrCodeInvalidCategory},
		{"bad date", dto.CreateLedgerEntryRequest{EntryType: "income", Category: "Tax", Amount: 1, Date: "yesterday"}, apperrors.ErrCodeInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Record(ctx, tc.req); codeOf(err) != tc.code {
				t.Fatalf("err = %v, want %s", err, tc.code)
			}
		})
	}
}
