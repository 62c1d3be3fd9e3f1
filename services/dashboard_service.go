package services

import (
	"fmt"
	"math"
	"time"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// DashboardStats is the front-desk landing view: the reconciled room
// breakdown plus today's movement and the in-house headcount.
type DashboardStats struct {
	OccupancyStats

	OccupancyRate      int `json:"occupancyRate"`
	TodaysCheckIns     int `json:"todaysCheckIns"`
	TodaysCheckOuts    int `json:"todaysCheckOuts"`
	TotalGuestsInHouse int `json:"totalGuestsInHouse"`
}

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// Stats loads rooms and live bookings, reconciles the occupancy buckets
// and layers today's arrivals/departures on top. Both reads are whole-list
// fetches; a failed read fails the whole pass rather than merging with
// stale data.
func (s *DashboardService) Stats(now time.Time) (DashboardStats, error) {
	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return DashboardStats{}, fmt.Errorf("load rooms: %w", err)
	}

	var active []models.Booking
	if err := s.DB.
		Where("status = ? AND actual_check_out_time IS NULL", models.BookingActive).
		Find(&active).Error; err != nil {
		return DashboardStats{}, fmt.Errorf("load active bookings: %w", err)
	}

	stats := DashboardStats{OccupancyStats: ReconcileOccupancy(rooms, active)}
	if stats.Total > 0 {
		stats.OccupancyRate = int(math.Round(float64(stats.Occupied) / float64(stats.Total) * 100))
	}

	year, month, day := now.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var checkIns int64
	if err := s.DB.Model(&models.Booking{}).
		Where("check_in_time >= ? AND check_in_time < ?", dayStart, dayEnd).
		Count(&checkIns).Error; err != nil {
		return DashboardStats{}, fmt.Errorf("count today's check-ins: %w", err)
	}
	stats.TodaysCheckIns = int(checkIns)

	for _, b := range active {
		if !b.ExpectedCheckOutTime.Before(dayStart) && b.ExpectedCheckOutTime.Before(dayEnd) {
			stats.TodaysCheckOuts++
		}
		stats.TotalGuestsInHouse += b.Adults + b.Children
	}

	return stats, nil
}

// RoomBoard returns every room with its display status resolved against
// live bookings, for the dashboard floor grid.
func (s *DashboardService) RoomBoard() ([]RoomStatusView, error) {
	var rooms []models.Room
	if err := s.DB.Preload("RoomType").Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	var active []models.Booking
	if err := s.DB.Preload("Guest").
		Where("status = ? AND actual_check_out_time IS NULL", models.BookingActive).
		Find(&active).Error; err != nil {
		return nil, fmt.Errorf("load active bookings: %w", err)
	}

	guestByRoom := make(map[uint]string, len(active))
	for _, b := range active {
		if b.IsLive() && b.Guest != nil {
			guestByRoom[b.RoomID] = b.Guest.FullName
		}
	}

	board := make([]RoomStatusView, 0, len(rooms))
	for _, room := range rooms {
		board = append(board, RoomStatusView{
			Room:          room,
			DisplayStatus: DisplayStatus(room, active),
			GuestName:     guestByRoom[room.ID],
		})
	}
	return board, nil
}

// RoomStatusView pairs a room with its booking-aware display status. The
// stored status is reported as-is alongside; only the display field is
// overridden by booking reality.
type RoomStatusView struct {
	models.Room
	DisplayStatus string `json:"displayStatus"`
	GuestName     string `json:"guestName,omitempty"`
}
