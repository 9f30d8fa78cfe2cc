package occupancy

import (
	"time"

	"hotelops/models"
)

// MaintenanceActive reports whether the room is blocked for maintenance on day.
// A maintenance flag without both window bounds stays active until it is cleared.
func MaintenanceActive(day time.Time, status *models.RoomStatus) bool {
	if status == nil || status.OperationalStatus != models.OperationalMaintenance {
		return false
	}
	if !status.HasMaintenanceWindow() {
		return true
	}
	loc := day.Location()
	return InRange(day, status.MaintenanceStart.In(loc), status.MaintenanceEnd.In(loc))
}
