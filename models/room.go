package models

import (
	"time"

	"gorm.io/gorm"
)

// Stored room statuses. The stored status is advisory: it can lag behind
// booking reality, so occupancy decisions always consult live bookings first.
const (
	RoomVacant      = "Vacant"
	RoomOccupied    = "Occupied"
	RoomDirty       = "Dirty"
	RoomMaintenance = "Maintenance"
)

type Room struct {
	ID        uint           `gorm:"primaryKey" json:"roomId"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Nullable so a payload without a valid FK won't try to insert 0.
	RoomTypeID *uint  `gorm:"column:room_type_id;index" json:"typeId,omitempty"`
	Number     string `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"number"`
	Floor      int    `json:"floor"`
	Status     string `gorm:"size:32;default:Vacant" json:"status"`

	RoomType *RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
}
