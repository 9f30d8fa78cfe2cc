package services

import (
	"context"
	"testing"
	"time"

	"hotelops/dto"
	apperrors "hotelops/errors"
	"hotelops/models"
	"hotelops/services/occupancy"
)

func seedGrid(t *testing.T) *memStore {
	t.Helper()
	m := newMemStore()
	for _, name := range []string{"101", "102", "103", "104", "105"} {
		m.addRoom(name)
	}
	m.statuses["101"].HousekeepingStatus = models.HousekeepingDirty
	m.statuses["105"].HousekeepingStatus = models.HousekeepingDirty

	start, end := day("2025-06-02"), day("2025-06-05")
	m.statuses["103"].OperationalStatus = models.OperationalMaintenance
	m.statuses["103"].MaintenanceStart = &start
	m.statuses["103"].MaintenanceEnd = &end

	m.addBooking(models.Booking{RoomRefs: []string{"101"}, CheckIn: "2025-06-01", CheckOut: "2025-06-03", Status: models.BookingCheckedIn, Adults: 2})
	m.addBooking(models.Booking{RoomRefs: []string{"102"}, CheckIn: "2025-06-03", CheckOut: "2025-06-05", Status: models.BookingConfirmed, Adults: 1})
	m.addBooking(models.Booking{RoomRefs: []string{"104"}, CheckIn: "2025-06-01", CheckOut: "2025-06-06", Status: models.BookingStayOver, Adults: 2})
	return m
}

func newFrontDesk(m *memStore, cache Cache) *FrontDeskService {
	return NewFrontDeskService(FrontDeskServiceOptions{Rooms: m, Statuses: m, Bookings: m, Cache: cache})
}

func TestRoomGridResolvesEveryStatus(t *testing.T) {
	m := seedGrid(t)
	grid, err := newFrontDesk(m, nil).RoomGrid(context.Background(), day("2025-06-03"), "")
	if err != nil {
		t.Fatalf("RoomGrid: %v", err)
	}

	want := map[string]occupancy.DisplayStatus{
		"101": occupancy.StatusDueOut,
		"102": occupancy.StatusReserved,
		"103": occupancy.StatusBlocked,
		"104": occupancy.StatusOccupied,
		"105": occupancy.StatusVacant,
	}
	if len(grid.Rooms) != len(want) {
		t.Fatalf("rooms = %d, want %d", len(grid.Rooms), len(want))
	}
	for _, v := range grid.Rooms {
		if v.Status != want[v.RoomName] {
			t.Errorf("room %s = %s, want %s", v.RoomName, v.Status, want[v.RoomName])
		}
	}
	for _, s := range occupancy.AllStatuses {
		if grid.Summary[s] != 1 {
			t.Errorf("summary[%s] = %d, want 1", s, grid.Summary[s])
		}
	}
	if grid.Date != "2025-06-03" || len(grid.Conflicts) != 0 {
		t.Errorf("date = %s, conflicts = %v", grid.Date, grid.Conflicts)
	}
}

func TestRoomGridFilterKeepsFullSummary(t *testing.T) {
	m := seedGrid(t)
	grid, err := newFrontDesk(m, nil).RoomGrid(context.Background(), day("2025-06-03"), occupancy.StatusOccupied)
	if err != nil {
		t.Fatalf("RoomGrid: %v", err)
	}
	if len(grid.Rooms) != 1 || grid.Rooms[0].RoomName != "104" || grid.Rooms[0].Variant != occupancy.VariantStayOver {
		t.Fatalf("filtered rooms = %+v", grid.Rooms)
	}
	total := 0
	for _, n := range grid.Summary {
		total += n
	}
	if total != 5 {
		t.Errorf("summary total = %d, want 5", total)
	}
}

func TestRoomGridRejectsUnknownFilter(t *testing.T) {
	_, err := newFrontDesk(seedGrid(t), nil).RoomGrid(context.Background(), day("2025-06-03"), "checked_out")
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeInvalidStatus {
		t.Fatalf("err = %v, want INVALID_STATUS", err)
	}
}

func TestRoomGridReportsDoubleBooking(t *testing.T) {
	m := seedGrid(t)
	second := m.addBooking(models.Booking{RoomRefs: []string{"102"}, CheckIn: "2025-06-02", CheckOut: "2025-06-04", Status: models.BookingCheckedIn, Adults: 1})
	secondID := second.ID

	grid, err := newFrontDesk(m, nil).RoomGrid(context.Background(), day("2025-06-03"), "")
	if err != nil {
		t.Fatalf("RoomGrid: %v", err)
	}
	if len(grid.Conflicts) != 1 || grid.Conflicts[0] != "102" {
		t.Fatalf("conflicts = %v, want [102]", grid.Conflicts)
	}
	for _, v := range grid.Rooms {
		if v.RoomName == "102" {
			if v.Booking == nil || v.Booking.ID == secondID || v.Status != occupancy.StatusReserved {
				t.Errorf("room 102 should keep the first booking in order, got %+v", v)
			}
		}
	}
}

func TestRoomGridTurnoverIsNotConflict(t *testing.T) {
	m := seedGrid(t)
	// khách mới nhận phòng 101 đúng ngày khách cũ trả phòng
	m.addBooking(models.Booking{RoomRefs: []string{"101"}, CheckIn: "2025-06-03", CheckOut: "2025-06-05", Status: models.BookingConfirmed, Adults: 1})

	grid, err := newFrontDesk(m, nil).RoomGrid(context.Background(), day("2025-06-03"), "")
	if err != nil {
		t.Fatalf("RoomGrid: %v", err)
	}
	if len(grid.Conflicts) != 0 {
		t.Errorf("conflicts = %v, want none", grid.Conflicts)
	}
	for _, v := range grid.Rooms {
		if v.RoomName == "101" && v.Status != occupancy.StatusDueOut {
			t.Errorf("room 101 = %s, want due_out", v.Status)
		}
	}
}

func TestRoomGridUsesStatusCache(t *testing.T) {
	m := seedGrid(t)
	cache, _ := newTestCache(t)
	fd := newFrontDesk(m, cache)
	hk := NewHousekeepingService(HousekeepingServiceOptions{Rooms: m, Statuses: m, Cache: cache, Location: time.UTC})
	ctx := context.Background()

	if _, err := fd.RoomGrid(ctx, day("2025-06-03"), ""); err != nil {
		t.Fatal(err)
	}

	// ghi trực tiếp vào store: cache vẫn trả về dữ liệu cũ
	m.statuses["105"].HousekeepingStatus = models.HousekeepingClean
	grid, _ := fd.RoomGrid(ctx, day("2025-06-03"), occupancy.StatusVacant)
	if len(grid.Rooms) != 1 || !grid.Rooms[0].Dirty {
		t.Fatalf("expected cached dirty status, got %+v", grid.Rooms)
	}

	// thao tác qua service xóa cache
	if _, err := hk.MarkClean(ctx, "105", dto.HousekeepingRequest{StaffName: "Lan"}); err != nil {
		t.Fatal(err)
	}
	grid, _ = fd.RoomGrid(ctx, day("2025-06-03"), occupancy.StatusVacant)
	if len(grid.Rooms) != 1 || grid.Rooms[0].Dirty || grid.Rooms[0].Label != "Vacant" {
		t.Fatalf("expected fresh clean status, got %+v", grid.Rooms)
	}
}

func TestRoomDetail(t *testing.T) {
	m := seedGrid(t)
	fd := newFrontDesk(m, nil)

	detail, err := fd.RoomDetail(context.Background(), " 101 ", day("2025-06-03"))
	if err != nil {
		t.Fatalf("RoomDetail: %v", err)
	}
	if detail.Room.RoomName != "101" || detail.View.Status != occupancy.StatusDueOut || detail.Status == nil {
		t.Fatalf("detail = %+v", detail)
	}

	_, err = fd.RoomDetail(context.Background(), "999", day("2025-06-03"))
	if appErr := apperrors.GetAppError(err); appErr == nil || appErr.Code != apperrors.ErrCodeRoomNotFound {
		t.Fatalf("err = %v, want ROOM_NOT_FOUND", err)
	}
}
