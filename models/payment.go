package models

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	ID        uint           `gorm:"primaryKey" json:"paymentId"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingID uint      `gorm:"index;column:booking_id" json:"bookingId"`
	Amount    float64   `json:"amount"`
	Mode      string    `gorm:"size:50" json:"mode"`
	Date      time.Time `json:"date"`
}
