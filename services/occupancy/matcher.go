package occupancy

import (
	"time"

	"hotelops/models"
)

// Match is the outcome of scanning bookings for one room and day.
// Count only includes bookings whose [checkIn, checkOut) contains the day; a
// checked-in guest matched on the departure day does not count, so a normal
// turnover is not a conflict. Count above 1 means the no-double-booking
// invariant is broken for that room.
type Match struct {
	Booking *models.Booking
	Count   int
}

func (m Match) Conflict() bool { return m.Count > 1 }

// stayDates parses a booking's check-in/check-out in the location of day.
func stayDates(b *models.Booking, day time.Time) (time.Time, time.Time) {
	loc := day.Location()
	return ParseDay(b.CheckIn, loc), ParseDay(b.CheckOut, loc)
}

// Occupies reports whether an active booking holds its rooms on day: the stay
// interval contains day, or day is the check-out day of a guest still checked in.
func Occupies(b *models.Booking, day time.Time) bool {
	if b == nil || b.IsInactive() {
		return false
	}
	checkIn, checkOut := stayDates(b, day)
	if InRange(day, checkIn, checkOut) {
		return true
	}
	return b.Status == models.BookingCheckedIn && SameDay(checkOut, day)
}

// FindActiveBooking scans bookings for the one occupying roomName on day.
// The first match in iteration order wins.
func FindActiveBooking(day time.Time, roomName string, bookings []models.Booking) Match {
	var m Match
	for i := range bookings {
		b := &bookings[i]
		if b.IsInactive() || !b.References(roomName) {
			continue
		}
		if !Occupies(b, day) {
			continue
		}
		if m.Booking == nil {
			m.Booking = b
		}
		checkIn, checkOut := stayDates(b, day)
		if InRange(day, checkIn, checkOut) {
			m.Count++
		}
	}
	return m
}

// Overlaps reports whether two stays share at least one night.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	if aIn.IsZero() || aOut.IsZero() || bIn.IsZero() || bOut.IsZero() {
		return false
	}
	return aIn.Before(bOut) && bIn.Before(aOut)
}
