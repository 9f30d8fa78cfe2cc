package occupancy

import (
	"testing"
	"time"

	"hotelops/models"
)

func booking(id uint, room, in, out string, status models.BookingStatus) models.Booking {
	return models.Booking{ID: id, RoomRefs: []string{room}, CheckIn: in, CheckOut: out, Status: status, Adults: 2}
}

func TestFindActiveBookingHalfOpenInterval(t *testing.T) {
	bookings := []models.Booking{booking(1, "101", "2025-06-01", "2025-06-04", models.BookingConfirmed)}

	for _, d := range []string{"2025-06-01", "2025-06-02", "2025-06-03"} {
		if m := FindActiveBooking(ParseDay(d, nil), "101", bookings); m.Booking == nil {
			t.Errorf("%s: expected booking to occupy room", d)
		}
	}
	if m := FindActiveBooking(ParseDay("2025-06-04", nil), "101", bookings); m.Booking != nil {
		t.Error("check-out day must not be occupied by a confirmed booking")
	}
}

func TestFindActiveBookingSameDayCheckout(t *testing.T) {
	bookings := []models.Booking{booking(1, "101", "2025-06-01", "2025-06-03", models.BookingCheckedIn)}
	m := FindActiveBooking(ParseDay("2025-06-03", nil), "101", bookings)
	if m.Booking == nil || m.Booking.ID != 1 {
		t.Fatalf("checked-in guest must still be matched on departure day, got %+v", m)
	}

	bookings[0].Status = models.BookingStayOver
	if m := FindActiveBooking(ParseDay("2025-06-03", nil), "101", bookings); m.Booking != nil {
		t.Error("only checked_in bookings are matched on the check-out day")
	}
}

func TestFindActiveBookingSkipsInactiveAndOtherRooms(t *testing.T) {
	bookings := []models.Booking{
		booking(1, "101", "2025-06-01", "2025-06-05", models.BookingCancelled),
		booking(2, "101", "2025-06-01", "2025-06-05", models.BookingNoShow),
		booking(3, "102", "2025-06-01", "2025-06-05", models.BookingCheckedIn),
		booking(4, "101", "2025-06-01", "2025-06-05", models.BookingCheckedOut),
	}
	if m := FindActiveBooking(ParseDay("2025-06-02", nil), "101", bookings); m.Booking != nil {
		t.Errorf("expected no match, got booking %d", m.Booking.ID)
	}
	if m := FindActiveBooking(ParseDay("2025-06-02", nil), " 102 ", bookings); m.Booking == nil || m.Booking.ID != 3 {
		t.Error("room names are matched ignoring surrounding space")
	}
}

func TestFindActiveBookingConflictTakesFirst(t *testing.T) {
	bookings := []models.Booking{
		booking(7, "201", "2025-06-01", "2025-06-05", models.BookingConfirmed),
		booking(8, "201", "2025-06-02", "2025-06-03", models.BookingCheckedIn),
	}
	m := FindActiveBooking(ParseDay("2025-06-02", nil), "201", bookings)
	if m.Booking == nil || m.Booking.ID != 7 {
		t.Fatalf("first booking in iteration order must win, got %+v", m.Booking)
	}
	if !m.Conflict() || m.Count != 2 {
		t.Errorf("expected conflict with 2 matches, got %d", m.Count)
	}
}

func TestFindActiveBookingTurnoverIsNotConflict(t *testing.T) {
	bookings := []models.Booking{
		booking(1, "101", "2025-06-01", "2025-06-03", models.BookingCheckedIn),
		booking(2, "101", "2025-06-03", "2025-06-05", models.BookingConfirmed),
	}
	m := FindActiveBooking(ParseDay("2025-06-03", nil), "101", bookings)
	if m.Booking == nil || m.Booking.ID != 1 {
		t.Fatalf("departing guest comes first in iteration order, got %+v", m.Booking)
	}
	if m.Conflict() || m.Count != 1 {
		t.Errorf("turnover must not be a conflict, count = %d", m.Count)
	}

	// khách chưa trả phòng vẫn đứng trước booking mới, và trạng thái là due out
	res := Resolve(ParseDay("2025-06-03", nil), m.Booking, false, models.HousekeepingDirty)
	if res.Status != StatusDueOut {
		t.Errorf("status = %s, want due_out", res.Status)
	}

	// chỉ còn booking check-out cùng ngày: vẫn khớp nhưng không tính vào Count
	m = FindActiveBooking(ParseDay("2025-06-03", nil), "101", bookings[:1])
	if m.Booking == nil || m.Count != 0 || m.Conflict() {
		t.Errorf("departure-only match = %+v", m)
	}
}

func TestFindActiveBookingMalformedDates(t *testing.T) {
	bookings := []models.Booking{booking(1, "101", "garbage", "2025-06-05", models.BookingCheckedIn)}
	if m := FindActiveBooking(ParseDay("2025-06-02", nil), "101", bookings); m.Booking != nil {
		t.Error("malformed dates must be treated as no match")
	}
}

func TestOverlaps(t *testing.T) {
	d := func(s string) time.Time { return ParseDay(s, nil) }
	if !Overlaps(d("2025-06-01"), d("2025-06-04"), d("2025-06-03"), d("2025-06-06")) {
		t.Error("stays sharing the night of 06-03 overlap")
	}
	if Overlaps(d("2025-06-01"), d("2025-06-04"), d("2025-06-04"), d("2025-06-06")) {
		t.Error("back-to-back stays do not overlap")
	}
	if Overlaps(d("bad"), d("2025-06-04"), d("2025-06-01"), d("2025-06-06")) {
		t.Error("invalid dates never overlap")
	}
}
