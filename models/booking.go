package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses.
const (
	BookingActive    = "Active"
	BookingCompleted = "Completed"
	BookingCancelled = "Cancelled"
)

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"bookingId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	GuestID uint `gorm:"index;column:guest_id" json:"guestId"`
	RoomID  uint `gorm:"index;column:room_id" json:"roomId"`

	ReferenceCode string `gorm:"column:reference_code;size:64" json:"referenceCode,omitempty"`
	Status        string `gorm:"size:32;index" json:"status"`

	CheckInTime          time.Time  `gorm:"column:check_in_time" json:"checkInTime"`
	ExpectedCheckOutTime time.Time  `gorm:"column:expected_check_out_time" json:"expectedCheckOutTime"`
	ActualCheckOutTime   *time.Time `gorm:"column:actual_check_out_time" json:"actualCheckOutTime,omitempty"`

	Adults   int `gorm:"default:1" json:"adults"`
	Children int `gorm:"default:0" json:"children"`

	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`
	TaxAmount   float64 `gorm:"column:tax_amount" json:"taxAmount"`

	Room  *Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Guest *Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

// IsLive reports whether the booking currently occupies its room. A recorded
// actual checkout always wins over the status field: a booking with an
// actual checkout time is never live regardless of what status says.
func (b Booking) IsLive() bool {
	return b.Status == BookingActive && b.ActualCheckOutTime == nil
}
