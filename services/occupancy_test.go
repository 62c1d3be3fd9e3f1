package services

import (
	"testing"
	"time"

	"frontdesk-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestReconcileOccupancy(t *testing.T) {
	rooms := []models.Room{
		room(1, "101", models.RoomOccupied),
		room(2, "102", models.RoomVacant),
		room(3, "103", models.RoomDirty),
		room(4, "104", models.RoomMaintenance),
		room(5, "105", models.RoomVacant),
	}
	active := []models.Booking{liveBooking(1, 1), liveBooking(2, 5)}

	stats := ReconcileOccupancy(rooms, active)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Occupied)
	assert.Equal(t, 1, stats.Dirty)
	assert.Equal(t, 1, stats.Maintenance)
	assert.Equal(t, 1, stats.Vacant)
}

func TestReconcileOccupancy_OccupiedCountsDistinctRooms(t *testing.T) {
	rooms := []models.Room{room(1, "101", models.RoomVacant), room(2, "102", models.RoomVacant)}
	// Two live bookings pointing at the same room: an upstream anomaly,
	// counted once.
	active := []models.Booking{liveBooking(1, 1), liveBooking(2, 1)}

	stats := ReconcileOccupancy(rooms, active)
	assert.Equal(t, 1, stats.Occupied)
	assert.Equal(t, 1, stats.Vacant)
}

func TestReconcileOccupancy_StoredOccupiedIgnoredWithoutBooking(t *testing.T) {
	rooms := []models.Room{room(1, "101", models.RoomOccupied)}

	stats := ReconcileOccupancy(rooms, nil)
	assert.Equal(t, 0, stats.Occupied)
	assert.Equal(t, 1, stats.Vacant)
}

func TestReconcileOccupancy_VacantClampedWhenSignalsDisagree(t *testing.T) {
	// One room both flagged Dirty and held by a live booking: occupied=1
	// and dirty=1 double-count against total=1.
	rooms := []models.Room{room(1, "101", models.RoomDirty)}
	active := []models.Booking{liveBooking(1, 1)}

	stats := ReconcileOccupancy(rooms, active)

	assert.Equal(t, 1, stats.Occupied)
	assert.Equal(t, 1, stats.Dirty)
	assert.GreaterOrEqual(t, stats.Vacant, 0)
	assert.Equal(t, 0, stats.Vacant)
}

func TestReconcileOccupancy_Empty(t *testing.T) {
	stats := ReconcileOccupancy(nil, nil)
	assert.Equal(t, OccupancyStats{}, stats)
}

func TestDisplayStatus(t *testing.T) {
	active := []models.Booking{liveBooking(1, 3)}

	t.Run("live booking forces occupied", func(t *testing.T) {
		assert.Equal(t, "occupied", DisplayStatus(room(3, "103", models.RoomDirty), active))
		assert.Equal(t, "occupied", DisplayStatus(room(3, "103", models.RoomMaintenance), active))
	})

	t.Run("stored status shown otherwise", func(t *testing.T) {
		assert.Equal(t, "dirty", DisplayStatus(room(4, "104", models.RoomDirty), active))
		assert.Equal(t, "vacant", DisplayStatus(room(5, "105", ""), active))
	})

	t.Run("checked-out booking does not hold the room", func(t *testing.T) {
		now := time.Now()
		stale := liveBooking(2, 6)
		stale.ActualCheckOutTime = &now
		assert.Equal(t, "vacant", DisplayStatus(room(6, "106", models.RoomVacant), []models.Booking{stale}))
	})
}
