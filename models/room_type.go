package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomType struct {
	ID uint `gorm:"primaryKey" json:"typeId"`

	Name      string  `gorm:"size:100" json:"name"`
	BaseRate  float64 `gorm:"column:base_rate" json:"baseRate"`
	MaxGuests int     `gorm:"column:max_guests" json:"maxGuests"`
	Amenities string  `gorm:"type:text" json:"amenities"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
