package services

import (
	"testing"
	"time"

	"frontdesk-backend/models"

	"github.com/stretchr/testify/assert"
)

func room(id uint, number, status string) models.Room {
	return models.Room{ID: id, Number: number, Status: status}
}

func liveBooking(id, roomID uint) models.Booking {
	return models.Booking{
		ID:          id,
		RoomID:      roomID,
		Status:      models.BookingActive,
		CheckInTime: time.Now().Add(-24 * time.Hour),
	}
}

func TestResolveAvailable(t *testing.T) {
	rooms := []models.Room{
		room(1, "101", models.RoomVacant),
		room(2, "102", models.RoomOccupied),
		room(3, "103", models.RoomDirty),
		room(4, "104", models.RoomMaintenance),
		room(5, "105", models.RoomVacant),
	}
	active := []models.Booking{liveBooking(1, 1)}

	available := ResolveAvailable(rooms, active)

	ids := make([]uint, 0, len(available))
	for _, r := range available {
		ids = append(ids, r.ID)
	}
	// Room 1 has a live booking, 3 is dirty, 4 is under maintenance.
	// Room 2 says Occupied but nothing live references it: stale, offered.
	assert.Equal(t, []uint{2, 5}, ids)
}

func TestResolveAvailable_BookingOverridesStoredStatus(t *testing.T) {
	// A room that stored status claims Vacant but a live booking holds.
	rooms := []models.Room{room(9, "301", models.RoomVacant)}
	active := []models.Booking{liveBooking(1, 9)}

	assert.Empty(t, ResolveAvailable(rooms, active))
}

func TestResolveAvailable_CompletedBookingDoesNotBlock(t *testing.T) {
	rooms := []models.Room{room(9, "301", models.RoomVacant)}

	now := time.Now()
	done := liveBooking(1, 9)
	done.Status = models.BookingCompleted
	done.ActualCheckOutTime = &now

	// Status Active but actual checkout recorded: checkout time wins.
	lyingActive := liveBooking(2, 9)
	lyingActive.ActualCheckOutTime = &now

	available := ResolveAvailable(rooms, []models.Booking{done, lyingActive})
	assert.Len(t, available, 1)
}

func TestResolveAvailable_Empty(t *testing.T) {
	assert.Empty(t, ResolveAvailable(nil, nil))
	assert.Empty(t, ResolveAvailable(nil, []models.Booking{liveBooking(1, 1)}))
}

func TestResolveAvailable_OutputNeverContradictsInputs(t *testing.T) {
	// Property from the availability contract: no returned room appears in
	// the occupied-id set or carries a Dirty/Maintenance status.
	rooms := []models.Room{
		room(1, "101", models.RoomVacant),
		room(2, "102", models.RoomDirty),
		room(3, "103", models.RoomOccupied),
		room(4, "104", models.RoomMaintenance),
		room(5, "105", models.RoomOccupied),
		room(6, "106", models.RoomDirty),
	}
	active := []models.Booking{liveBooking(1, 1), liveBooking(2, 2), liveBooking(3, 5)}

	occupied := OccupiedRoomIDs(active)
	for _, r := range ResolveAvailable(rooms, active) {
		_, taken := occupied[r.ID]
		assert.False(t, taken, "room %d is occupied but was offered", r.ID)
		assert.NotEqual(t, models.RoomDirty, r.Status)
		assert.NotEqual(t, models.RoomMaintenance, r.Status)
	}
}

func TestActiveOnly(t *testing.T) {
	now := time.Now()
	checkedOut := liveBooking(2, 2)
	checkedOut.ActualCheckOutTime = &now
	cancelled := liveBooking(3, 3)
	cancelled.Status = models.BookingCancelled

	active := ActiveOnly([]models.Booking{liveBooking(1, 1), checkedOut, cancelled})

	assert.Len(t, active, 1)
	assert.Equal(t, uint(1), active[0].ID)
}
