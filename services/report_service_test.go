package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
)

func seedReport(t *testing.T) *memStore {
	t.Helper()
	m := newMemStore()
	for _, name := range []string{"101", "102", "103", "104"} {
		m.addRoom(name)
	}
	m.addBooking(models.Booking{RoomRefs: []string{"101"}, CheckIn: "2025-06-01", CheckOut: "2025-06-05", Status: models.BookingCheckedIn, Adults: 2, Children: 1})
	m.addBooking(models.Booking{RoomRefs: []string{"102"}, CheckIn: "2025-06-02", CheckOut: "2025-06-04", Status: models.BookingMaintenance})
	m.addBooking(models.Booking{RoomRefs: []string{"103"}, CheckIn: "2025-06-03", CheckOut: "2025-06-04", Status: models.BookingConfirmed, Adults: 2})
	m.addBooking(models.Booking{RoomRefs: []string{"104"}, CheckIn: "2025-06-01", CheckOut: "2025-06-03", Status: models.BookingCheckedOut, Adults: 1})

	at := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	m.entries = []models.LedgerEntry{
		{EntryType: models.EntryIncome, Category: models.CategoryRoomCharge, Amount: 100, Date: at},
		{EntryType: models.EntryIncome, Category: models.CategoryTax, Amount: 10, Date: at},
		{EntryType: models.EntryIncome, Category: models.CategoryPayment, Amount: 500, Date: at},
		{EntryType: models.EntryExpense, Category: "Laundry", Amount: 50, Date: at},
		{EntryType: models.EntryIncome, Category: models.CategoryRoomCharge, Amount: 999, Date: at.AddDate(0, 0, 1)},
	}
	return m
}

func newReports(m *memStore, cache Cache) *ReportService {
	return NewReportService(ReportServiceOptions{Rooms: m, Bookings: m, Ledger: m, Audits: m, Cache: cache})
}

func TestDailyReport(t *testing.T) {
	m := seedReport(t)
	r, err := newReports(m, nil).Daily(context.Background(), day("2025-06-03"))
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}

	if r.Rooms.Total != 4 || r.Rooms.OOD != 1 || r.Rooms.Rented != 1 || r.Rooms.Reserved != 1 ||
		r.Rooms.Available != 3 || r.Rooms.Vacant != 2 || r.Rooms.OccupancyPercentage != 25 {
		t.Errorf("rooms = %+v", r.Rooms)
	}
	if r.Guests.Adults != 2 || r.Guests.Children != 1 || r.Guests.InHouse != 3 || r.Guests.Arrivals != 1 || r.Guests.Departures != 1 {
		t.Errorf("guests = %+v", r.Guests)
	}
	if r.Revenue.RoomRevenue != 100 || r.Revenue.Tax != 10 || r.Revenue.TotalRevenue != 110 ||
		r.Revenue.ADR != 100 || r.Revenue.RevPAR != 25 {
		t.Errorf("revenue = %+v", r.Revenue)
	}
}

func TestDailyReportCacheInvalidatedByLedger(t *testing.T) {
	m := seedReport(t)
	cache, _ := newTestCache(t)
	reports := newReports(m, cache)
	ledger := NewLedgerService(LedgerServiceOptions{Ledger: m, Cache: cache, Location: time.UTC})
	ctx := context.Background()

	if _, err := reports.Daily(ctx, day("2025-06-03")); err != nil {
		t.Fatal(err)
	}
	m.entries = append(m.entries, models.LedgerEntry{EntryType: models.EntryIncome, Category: "Spa", Amount: 40, Date: day("2025-06-03")})
	r, _ := reports.Daily(ctx, day("2025-06-03"))
	if r.Revenue.TotalRevenue != 110 {
		t.Fatalf("expected cached total 110, got %v", r.Revenue.TotalRevenue)
	}

	_, err := ledger.Record(ctx, dto.CreateLedgerEntryRequest{EntryType: "income", Category: "Food/Beverage", Amount: 25, Date: "2025-06-03"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	r, _ = reports.Daily(ctx, day("2025-06-03"))
	if r.Revenue.TotalRevenue != 175 || r.Revenue.FB != 25 || r.Revenue.Other != 40 {
		t.Fatalf("revenue after invalidation = %+v", r.Revenue)
	}
}

func TestRangeReport(t *testing.T) {
	m := newMemStore()
	reports := newReports(m, nil)
	ctx := context.Background()
	for i, occ := range []float64{50, 70} {
		d := day("2025-06-01").AddDate(0, 0, i)
		_ = m.SaveReport(ctx, &models.NightAuditReport{AuditDate: datatypesDate(d), OccupancyPercent: occ, TotalRevenue: 1000})
	}

	r, err := reports.Range(ctx, day("2025-06-01"), day("2025-06-30"))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Days) != 2 || r.TotalRevenue != 2000 || math.Abs(r.AverageOccupancy-60) > 1e-9 {
		t.Fatalf("range = %+v", r)
	}

	if _, err := reports.Range(ctx, day("2025-06-30"), day("2025-06-01")); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("inverted range err = %v, want ErrInvalidInput", err)
	}
	if _, err := reports.Range(ctx, day("2024-01-01"), day("2025-06-01")); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("long range err = %v, want ErrInvalidInput", err)
	}
}
