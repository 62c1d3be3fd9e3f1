package models

import (
	"time"

	"gorm.io/gorm"
)

// Charge is one ad-hoc line added to a booking during the stay (room
// service, laundry, mini bar...). Summed at checkout; never folded back
// into the booking's stored total.
type Charge struct {
	ID        uint           `gorm:"primaryKey" json:"chargeId"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingID   uint      `gorm:"index;column:booking_id" json:"bookingId"`
	Description string    `gorm:"size:255" json:"description"`
	Category    string    `gorm:"size:100" json:"category"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}
