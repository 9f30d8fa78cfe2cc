package occupancy

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-01", time.Date(2025, 6, 1, 0, 0, 0, 0, loc)},
		{"01/06/2025", time.Date(2025, 6, 1, 0, 0, 0, 0, loc)},
		{"2025-06-01T22:30:00+07:00", time.Date(2025, 6, 1, 0, 0, 0, 0, loc)},
		{" 2025-06-01 ", time.Date(2025, 6, 1, 0, 0, 0, 0, loc)},
		{"", time.Time{}},
		{"not-a-date", time.Time{}},
		{"2025-13-45", time.Time{}},
	}
	for _, tt := range tests {
		got := ParseDay(tt.in, loc)
		if !got.Equal(tt.want) {
			t.Errorf("ParseDay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInRangeIsHalfOpen(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	for d := 0; d < 3; d++ {
		day := start.AddDate(0, 0, d).Add(15 * time.Hour)
		if !InRange(day, start, end) {
			t.Errorf("day %d should be in range", d)
		}
	}
	if InRange(end, start, end) {
		t.Error("end day must be excluded")
	}
	if InRange(start.AddDate(0, 0, -1), start, end) {
		t.Error("day before start must be excluded")
	}
}

func TestInRangeInvalidDatesNeverMatch(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	if InRange(day, time.Time{}, day.AddDate(0, 0, 1)) {
		t.Error("zero start must not match")
	}
	if InRange(day, day, time.Time{}) {
		t.Error("zero end must not match")
	}
	if InRange(time.Time{}, day, day.AddDate(0, 0, 1)) {
		t.Error("zero day must not match")
	}
}

func TestDayBounds(t *testing.T) {
	day := time.Date(2025, 6, 2, 13, 45, 0, 0, time.UTC)
	start, end := DayBounds(day)
	if !start.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !SameDay(end, day) || !end.After(day) {
		t.Errorf("end = %v", end)
	}
}
