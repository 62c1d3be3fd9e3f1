package services

import (
	"strings"

	"frontdesk-backend/models"
)

// ActiveOnly keeps only bookings that currently occupy a room: status
// Active and no recorded actual checkout. The backend sometimes returns
// rows whose status lags behind the checkout timestamp, so both signals
// are checked.
func ActiveOnly(bookings []models.Booking) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsLive() {
			out = append(out, b)
		}
	}
	return out
}

// OccupiedRoomIDs returns the set of room ids referenced by live bookings.
func OccupiedRoomIDs(active []models.Booking) map[uint]struct{} {
	ids := make(map[uint]struct{}, len(active))
	for _, b := range active {
		if b.IsLive() {
			ids[b.RoomID] = struct{}{}
		}
	}
	return ids
}

// ResolveAvailable computes the rooms that may be offered for a new
// check-in. A room is out if a live booking references it, or if its
// stored status is Dirty or Maintenance. A stored "Occupied" with no
// matching live booking is treated as stale and the room stays available:
// booking existence overrides the stored status for occupancy, while the
// stored status still gates cleanliness and maintenance.
func ResolveAvailable(rooms []models.Room, active []models.Booking) []models.Room {
	occupied := OccupiedRoomIDs(active)

	out := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if _, taken := occupied[room.ID]; taken {
			continue
		}
		switch strings.ToLower(room.Status) {
		case "dirty", "maintenance":
			continue
		}
		out = append(out, room)
	}
	return out
}
