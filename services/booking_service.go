package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"frontdesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingService struct {
	DB       *gorm.DB
	Invoices *InvoiceService
	TaxRate  float64
}

func NewBookingService(db *gorm.DB, invoices *InvoiceService, taxRate float64) *BookingService {
	if taxRate <= 0 {
		taxRate = DefaultTaxRate
	}
	return &BookingService{DB: db, Invoices: invoices, TaxRate: taxRate}
}

// CheckInInput is the payload for creating a new stay. The guest must
// already exist (see GuestService.InsertUpdate).
type CheckInInput struct {
	GuestID              uint      `json:"guestId" binding:"required"`
	RoomID               uint      `json:"roomId" binding:"required"`
	CheckInTime          time.Time `json:"checkInTime" binding:"required"`
	ExpectedCheckOutTime time.Time `json:"expectedCheckOutTime" binding:"required"`
	Adults               int       `json:"adults"`
	Children             int       `json:"children"`
	AdvancePayment       float64   `json:"advancePayment"`
	PaymentMode          string    `json:"paymentMode"`
}

// CheckOutInput carries the front desk's discount and payment entries. A
// positive percentage overrides the absolute amount outright.
type CheckOutInput struct {
	DiscountPercent float64 `json:"discountPercent"`
	DiscountAmount  float64 `json:"discountAmount"`
	PaymentAmount   float64 `json:"paymentAmount"`
	PaymentMode     string  `json:"paymentMode"`
}

func (s *BookingService) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Room.RoomType").Preload("Guest").
		Order("check_in_time DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Room.RoomType").Preload("Guest").First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booking, ErrNotFound
	}
	return booking, err
}

// Active returns the live bookings: status Active and no actual checkout
// recorded. Readers of this list (availability, occupancy, checkout
// screens) rely on both conditions.
func (s *BookingService) Active() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Room.RoomType").Preload("Guest").
		Where("status = ? AND actual_check_out_time IS NULL", models.BookingActive).
		Order("check_in_time").
		Find(&bookings).Error
	return bookings, err
}

// CheckIn opens a stay: creates an Active booking with a quoted total and
// flips the room to Occupied, in one transaction. The room must have no
// live booking — at most one live occupancy per room is enforced here —
// and must not be Dirty or under Maintenance.
func (s *BookingService) CheckIn(in CheckInInput) (models.Booking, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, fmt.Errorf("load room: %w", err)
	}

	switch strings.ToLower(room.Status) {
	case "dirty", "maintenance":
		return models.Booking{}, ErrRoomUnavailable
	}

	var liveCount int64
	if err := s.DB.Model(&models.Booking{}).
		Where("room_id = ? AND status = ? AND actual_check_out_time IS NULL", in.RoomID, models.BookingActive).
		Count(&liveCount).Error; err != nil {
		return models.Booking{}, fmt.Errorf("check room occupancy: %w", err)
	}
	if liveCount > 0 {
		return models.Booking{}, ErrRoomUnavailable
	}

	var baseRate float64
	if room.RoomType != nil {
		baseRate = room.RoomType.BaseRate
	}
	total, tax := QuoteStay(in.CheckInTime, in.ExpectedCheckOutTime, baseRate, s.TaxRate)

	adults := in.Adults
	if adults < 1 {
		adults = 1
	}

	booking := models.Booking{
		GuestID:              in.GuestID,
		RoomID:               in.RoomID,
		ReferenceCode:        "BK-" + strings.ToUpper(uuid.NewString()[:8]),
		Status:               models.BookingActive,
		CheckInTime:          in.CheckInTime,
		ExpectedCheckOutTime: in.ExpectedCheckOutTime,
		Adults:               adults,
		Children:             in.Children,
		TotalAmount:          total,
		TaxAmount:            tax,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		if in.AdvancePayment > 0 {
			payment := models.Payment{
				BookingID: booking.ID,
				Amount:    in.AdvancePayment,
				Mode:      in.PaymentMode,
				Date:      time.Now(),
			}
			if err := tx.Create(&payment).Error; err != nil {
				return fmt.Errorf("record advance payment: %w", err)
			}
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", in.RoomID).
			Update("status", models.RoomOccupied).Error; err != nil {
			return fmt.Errorf("mark room occupied: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}

	return s.GetByID(booking.ID)
}

// CheckOut closes a live booking: computes the final bill from the charge
// ledger, stamps the actual checkout time, records the payment and flips
// the room to Dirty — all inside one transaction. The invoice is emitted
// only after the transaction commits, on its own goroutine; its failure
// never reverses the checkout. A failed transaction leaves booking and
// room in their last known-good state.
func (s *BookingService) CheckOut(bookingID uint, in CheckOutInput) (models.Booking, Bill, error) {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return models.Booking{}, Bill{}, err
	}
	if !booking.IsLive() {
		return models.Booking{}, Bill{}, ErrBookingNotActive
	}

	var charges []models.Charge
	if err := s.DB.Where("booking_id = ?", bookingID).Order("date").Find(&charges).Error; err != nil {
		return models.Booking{}, Bill{}, fmt.Errorf("load charges: %w", err)
	}

	bill := ComputeBillWithTax(booking, charges, in.DiscountPercent, in.DiscountAmount, in.PaymentAmount, s.TaxRate)
	now := time.Now()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).Where("id = ?", bookingID).Updates(map[string]interface{}{
			"status":                models.BookingCompleted,
			"actual_check_out_time": now,
			"total_amount":          bill.GrandTotal,
			"tax_amount":            bill.TaxAmount,
		}).Error; err != nil {
			return fmt.Errorf("complete booking: %w", err)
		}
		if in.PaymentAmount > 0 {
			payment := models.Payment{
				BookingID: bookingID,
				Amount:    in.PaymentAmount,
				Mode:      in.PaymentMode,
				Date:      now,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return fmt.Errorf("record payment: %w", err)
			}
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).
			Update("status", models.RoomDirty).Error; err != nil {
			return fmt.Errorf("mark room dirty: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Booking{}, Bill{}, err
	}

	booking.Status = models.BookingCompleted
	booking.ActualCheckOutTime = &now
	booking.TotalAmount = bill.GrandTotal
	booking.TaxAmount = bill.TaxAmount

	// Best effort, after commit. See InvoiceService.EmitAsync.
	if s.Invoices != nil {
		s.Invoices.EmitAsync(BuildInvoice(booking, bill, charges, in.PaymentMode, now))
	}

	return booking, bill, nil
}

// Cancel closes a live booking without billing and releases the room.
func (s *BookingService) Cancel(bookingID uint) error {
	booking, err := s.GetByID(bookingID)
	if err != nil {
		return err
	}
	if !booking.IsLive() {
		return ErrBookingNotActive
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).Where("id = ?", bookingID).
			Update("status", models.BookingCancelled).Error; err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
		if err := tx.Model(&models.Room{}).
			Where("id = ? AND status = ?", booking.RoomID, models.RoomOccupied).
			Update("status", models.RoomVacant).Error; err != nil {
			return fmt.Errorf("release room: %w", err)
		}
		return nil
	})
}
