package models

import (
	"time"

	"gorm.io/gorm"
)

type Guest struct {
	ID        uint           `gorm:"primaryKey" json:"guestId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName string `gorm:"size:255" json:"fullName"`
	Mobile   string `gorm:"size:32;index" json:"mobile"`
	Email    string `gorm:"size:150" json:"email,omitempty"`

	IDType   string `gorm:"column:id_type;size:64" json:"idType,omitempty"`
	IDNumber string `gorm:"column:id_number;size:64" json:"idNumber,omitempty"`

	Address string `gorm:"type:text" json:"address,omitempty"`
	City    string `gorm:"size:100" json:"city,omitempty"`
	Country string `gorm:"size:100" json:"country,omitempty"`
}
