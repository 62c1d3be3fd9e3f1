package services

import (
	"errors"
	"strings"
	"time"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type ChargeService struct {
	DB *gorm.DB
}

func NewChargeService(db *gorm.DB) *ChargeService {
	return &ChargeService{DB: db}
}

func (s *ChargeService) GetByBooking(bookingID uint) ([]models.Charge, error) {
	var charges []models.Charge
	err := s.DB.Where("booking_id = ?", bookingID).Order("date").Find(&charges).Error
	return charges, err
}

// Add appends a charge to a live booking's ledger. Completed and cancelled
// bookings are frozen; nothing may be added to them.
func (s *ChargeService) Add(charge models.Charge) (models.Charge, error) {
	charge.Description = strings.TrimSpace(charge.Description)
	if charge.Description == "" {
		return models.Charge{}, errors.New("charge description is required")
	}
	if charge.Amount <= 0 {
		return models.Charge{}, ErrInvalidAmount
	}

	var booking models.Booking
	if err := s.DB.First(&booking, charge.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Charge{}, ErrNotFound
		}
		return models.Charge{}, err
	}
	if !booking.IsLive() {
		return models.Charge{}, ErrBookingNotActive
	}

	if charge.Date.IsZero() {
		charge.Date = time.Now()
	}
	if err := s.DB.Create(&charge).Error; err != nil {
		return models.Charge{}, err
	}
	return charge, nil
}

func (s *ChargeService) Remove(id uint) error {
	res := s.DB.Delete(&models.Charge{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
