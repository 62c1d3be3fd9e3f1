package services

import (
	"strings"

	"frontdesk-backend/models"
)

// OccupancyStats is the per-status room breakdown shown on the dashboard.
type OccupancyStats struct {
	Total       int `json:"totalRooms"`
	Occupied    int `json:"occupiedRooms"`
	Vacant      int `json:"vacantRooms"`
	Dirty       int `json:"dirtyRooms"`
	Maintenance int `json:"maintenanceRooms"`
}

// ReconcileOccupancy derives aggregate room counts from the inventory and
// the live bookings. Occupied counts distinct rooms referenced by live
// bookings, not rooms whose stored status says Occupied. Vacant is clamped
// at zero: when a room is both flagged Dirty and referenced by a stale
// booking the buckets double-count, and the clamp absorbs that rather than
// reporting a negative count.
func ReconcileOccupancy(rooms []models.Room, active []models.Booking) OccupancyStats {
	stats := OccupancyStats{Total: len(rooms)}

	stats.Occupied = len(OccupiedRoomIDs(active))

	for _, room := range rooms {
		switch strings.ToLower(room.Status) {
		case "dirty":
			stats.Dirty++
		case "maintenance":
			stats.Maintenance++
		}
	}

	vacant := stats.Total - stats.Occupied - stats.Dirty - stats.Maintenance
	if vacant < 0 {
		vacant = 0
	}
	stats.Vacant = vacant
	return stats
}

// DisplayStatus is the presentation status for a single room. A live
// booking forces "occupied" no matter what the stored status says; the
// stored record itself is left untouched.
func DisplayStatus(room models.Room, active []models.Booking) string {
	for _, b := range active {
		if b.IsLive() && b.RoomID == room.ID {
			return "occupied"
		}
	}
	if room.Status == "" {
		return "vacant"
	}
	return strings.ToLower(room.Status)
}
