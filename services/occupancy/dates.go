// Package occupancy derives the front-desk status of each room for a calendar day
// and folds bookings and ledger entries into the daily operations report.
//
// Every function here is pure: callers load the data and pass it in.
package occupancy

import (
	"strings"
	"time"
)

var dayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// NormalizeDay truncates t to midnight in t's own location.
// The zero time stays zero and means "invalid date".
func NormalizeDay(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDay đọc ngày theo các định dạng hỗ trợ, trả về zero time nếu không hợp lệ
func ParseDay(s string, loc *time.Location) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dayLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return NormalizeDay(t.In(loc))
		}
	}
	return time.Time{}
}

// SameDay reports whether a and b fall on the same calendar day. Zero never matches.
func SameDay(a, b time.Time) bool {
	a, b = NormalizeDay(a), NormalizeDay(b)
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a.Equal(b)
}

// InRange is the half-open containment test start <= day < end.
func InRange(day, start, end time.Time) bool {
	day, start, end = NormalizeDay(day), NormalizeDay(start), NormalizeDay(end)
	if day.IsZero() || start.IsZero() || end.IsZero() {
		return false
	}
	return !day.Before(start) && day.Before(end)
}

// DayBounds trả về [00:00, 23:59:59.999999999] của ngày
func DayBounds(day time.Time) (time.Time, time.Time) {
	start := NormalizeDay(day)
	if start.IsZero() {
		return time.Time{}, time.Time{}
	}
	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
