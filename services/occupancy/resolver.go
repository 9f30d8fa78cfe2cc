package occupancy

import (
	"strings"
	"time"

	"hotelops/models"
)

// DisplayStatus là trạng thái hiển thị của phòng trên sơ đồ lễ tân
type DisplayStatus string

const (
	StatusVacant   DisplayStatus = "vacant"
	StatusOccupied DisplayStatus = "occupied"
	StatusReserved DisplayStatus = "reserved"
	StatusBlocked  DisplayStatus = "blocked"
	StatusDueOut   DisplayStatus = "due_out"
)

// AllStatuses liệt kê năm trạng thái hiển thị, loại trừ lẫn nhau
var AllStatuses = []DisplayStatus{StatusVacant, StatusOccupied, StatusReserved, StatusBlocked, StatusDueOut}

func (s DisplayStatus) Valid() bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Resolution is the display outcome for one room on one day.
// Variant tells stay-over apart from a regular occupied room.
type Resolution struct {
	Status  DisplayStatus `json:"status"`
	Label   string        `json:"label"`
	Variant string        `json:"variant,omitempty"`
	Dirty   bool          `json:"dirty"`
}

const (
	VariantMaintenanceBooking = "maintenance_booking"
	VariantMaintenanceWindow  = "maintenance_window"
	VariantStayOver           = "stay_over"
	VariantCheckedIn          = "checked_in"
)

// Resolve applies the priority table; the first matching rule wins.
// booking must already be the active match for this room and day, or nil.
func Resolve(day time.Time, booking *models.Booking, maintenanceActive bool, housekeeping models.HousekeepingStatus) Resolution {
	dirty := housekeeping == models.HousekeepingDirty

	if booking != nil {
		switch booking.Status {
		case models.BookingMaintenance:
			return Resolution{Status: StatusBlocked, Label: "Maintenance", Variant: VariantMaintenanceBooking}
		case models.BookingStayOver:
			return Resolution{Status: StatusOccupied, Label: "Stay Over", Variant: VariantStayOver}
		case models.BookingCheckedIn:
			checkOut := ParseDay(booking.CheckOut, day.Location())
			if SameDay(checkOut, day) && housekeeping != models.HousekeepingClean {
				return Resolution{Status: StatusDueOut, Label: "Due Out", Variant: VariantCheckedIn, Dirty: dirty}
			}
			return Resolution{Status: StatusOccupied, Label: "Occupied", Variant: VariantCheckedIn}
		case models.BookingConfirmed:
			return Resolution{Status: StatusReserved, Label: "Reserved"}
		}
	}

	if maintenanceActive {
		return Resolution{Status: StatusBlocked, Label: "Out of Order", Variant: VariantMaintenanceWindow}
	}
	if dirty {
		return Resolution{Status: StatusVacant, Label: "Vacant Dirty", Dirty: true}
	}
	return Resolution{Status: StatusVacant, Label: "Vacant"}
}

// RoomView là kết quả của một ô trên lưới phòng
type RoomView struct {
	RoomName           string                    `json:"roomName"`
	SuiteType          models.SuiteType          `json:"suiteType"`
	HousekeepingStatus models.HousekeepingStatus `json:"housekeepingStatus"`
	Resolution
	Booking  *models.Booking `json:"booking,omitempty"`
	Conflict bool            `json:"conflict,omitempty"`
}

// ResolveRoom runs matcher, maintenance evaluator and policy for one room.
func ResolveRoom(day time.Time, room models.Room, status *models.RoomStatus, bookings []models.Booking) RoomView {
	day = NormalizeDay(day)
	match := FindActiveBooking(day, room.RoomName, bookings)

	housekeeping := models.HousekeepingClean
	if status != nil && status.HousekeepingStatus != "" {
		housekeeping = status.HousekeepingStatus
	}

	return RoomView{
		RoomName:           room.RoomName,
		SuiteType:          room.SuiteType,
		HousekeepingStatus: housekeeping,
		Resolution:         Resolve(day, match.Booking, MaintenanceActive(day, status), housekeeping),
		Booking:            match.Booking,
		Conflict:           match.Conflict(),
	}
}

// ResolveGrid resolves every room independently, in the order of rooms.
func ResolveGrid(day time.Time, rooms []models.Room, statuses []models.RoomStatus, bookings []models.Booking) []RoomView {
	byName := make(map[string]*models.RoomStatus, len(statuses))
	for i := range statuses {
		byName[roomKey(statuses[i].RoomName)] = &statuses[i]
	}

	views := make([]RoomView, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, ResolveRoom(day, room, byName[roomKey(room.RoomName)], bookings))
	}
	return views
}

// Summarize đếm số phòng theo trạng thái hiển thị
func Summarize(views []RoomView) map[DisplayStatus]int {
	counts := make(map[DisplayStatus]int, len(AllStatuses))
	for _, s := range AllStatuses {
		counts[s] = 0
	}
	for _, v := range views {
		counts[v.Status]++
	}
	return counts
}

// FilterByStatus keeps rooms in the given status; stay-over rooms are occupied.
func FilterByStatus(views []RoomView, status DisplayStatus) []RoomView {
	out := make([]RoomView, 0, len(views))
	for _, v := range views {
		if v.Status == status {
			out = append(out, v)
		}
	}
	return out
}

func roomKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
