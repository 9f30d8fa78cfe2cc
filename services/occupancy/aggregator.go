package occupancy

import (
	"strings"
	"time"

	"hotelops/models"
)

// RoomStats đếm phòng theo trạng thái trong ngày
type RoomStats struct {
	Total               int     `json:"total"`
	OOD                 int     `json:"ood"`
	Rented              int     `json:"rented"`
	Reserved            int     `json:"reserved"`
	Available           int     `json:"available"`
	Vacant              int     `json:"vacant"`
	OccupancyPercentage float64 `json:"occupancyPercentage"`
}

// GuestStats đếm khách lưu trú, khách đến và khách đi trong ngày
type GuestStats struct {
	Adults     int `json:"adults"`
	Children   int `json:"children"`
	Arrivals   int `json:"arrivals"`
	Departures int `json:"departures"`
	InHouse    int `json:"inHouse"`
}

// RevenueStats tổng hợp doanh thu trong ngày theo nhóm hạng mục
type RevenueStats struct {
	RoomRevenue  float64 `json:"roomRevenue"`
	Tax          float64 `json:"tax"`
	FB           float64 `json:"fb"`
	Other        float64 `json:"other"`
	TotalRevenue float64 `json:"totalRevenue"`
	ADR          float64 `json:"adr"`
	RevPAR       float64 `json:"revPar"`
}

// DailyReport là báo cáo vận hành của một ngày
type DailyReport struct {
	Date    string       `json:"date"`
	Rooms   RoomStats    `json:"rooms"`
	Guests  GuestStats   `json:"guests"`
	Revenue RevenueStats `json:"revenue"`
}

type revenueBucket int

const (
	bucketSkip revenueBucket = iota
	bucketRoom
	bucketTax
	bucketFB
	bucketOther
)

var categoryBuckets = map[string]revenueBucket{
	"room charge":     bucketRoom,
	"room":            bucketRoom,
	"room revenue":    bucketRoom,
	"tax":             bucketTax,
	"vat":             bucketTax,
	"food/beverage":   bucketFB,
	"food & beverage": bucketFB,
	"f&b":             bucketFB,
	"fb":              bucketFB,
	"payment":         bucketSkip,
}

func bucketFor(category string) revenueBucket {
	if b, ok := categoryBuckets[strings.ToLower(strings.TrimSpace(category))]; ok {
		return b
	}
	return bucketOther
}

// Aggregate folds bookings and ledger entries into the report for day.
// Ledger entries outside day and non-income entries are ignored.
func Aggregate(day time.Time, bookings []models.Booking, entries []models.LedgerEntry, totalRooms int) DailyReport {
	day = NormalizeDay(day)
	if totalRooms < 0 {
		totalRooms = 0
	}
	report := DailyReport{Rooms: RoomStats{Total: totalRooms}}
	if day.IsZero() {
		report.Rooms.Vacant = totalRooms
		report.Rooms.Available = totalRooms
		return report
	}
	report.Date = day.Format(models.DateLayout)

	var ood, rented, reserved int
	for i := range bookings {
		b := &bookings[i]
		if b.Status == models.BookingCancelled || b.Status == models.BookingNoShow {
			continue
		}
		checkIn, checkOut := stayDates(b, day)

		if b.Status != models.BookingMaintenance {
			if SameDay(checkIn, day) && b.Status != models.BookingCheckedOut {
				report.Guests.Arrivals++
			}
			if SameDay(checkOut, day) && b.Status != models.BookingConfirmed {
				report.Guests.Departures++
			}
		}

		if !Occupies(b, day) {
			continue
		}
		n := b.RoomCount()
		switch b.Status {
		case models.BookingMaintenance:
			ood += n
		case models.BookingConfirmed:
			reserved += n
		default:
			rented += n
			report.Guests.Adults += b.Adults
			report.Guests.Children += b.Children
		}
	}

	// ood và rented không vượt quá tổng số phòng, để vacant+rented+ood == total
	ood = min(ood, totalRooms)
	rented = min(rented, totalRooms-ood)

	report.Rooms.OOD = ood
	report.Rooms.Rented = rented
	report.Rooms.Reserved = reserved
	report.Rooms.Available = totalRooms - ood
	report.Rooms.Vacant = totalRooms - ood - rented
	report.Rooms.OccupancyPercentage = safeDiv(float64(rented), float64(totalRooms)) * 100
	report.Guests.InHouse = report.Guests.Adults + report.Guests.Children

	rev := &report.Revenue
	for _, e := range entries {
		if e.EntryType != models.EntryIncome {
			continue
		}
		if !SameDay(e.Date.In(day.Location()), day) {
			continue
		}
		switch bucketFor(e.Category) {
		case bucketRoom:
			rev.RoomRevenue += e.Amount
		case bucketTax:
			rev.Tax += e.Amount
		case bucketFB:
			rev.FB += e.Amount
		case bucketOther:
			rev.Other += e.Amount
		}
	}
	rev.TotalRevenue = rev.RoomRevenue + rev.Tax + rev.FB + rev.Other
	rev.ADR = safeDiv(rev.RoomRevenue, float64(rented))
	rev.RevPAR = safeDiv(rev.RoomRevenue, float64(totalRooms))

	return report
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
