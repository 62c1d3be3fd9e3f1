package services

import (
	"errors"
	"fmt"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").Order("room_number").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.Preload("RoomType").First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return room, ErrNotFound
	}
	return room, err
}

func (s *RoomService) Create(room *models.Room) error {
	if room.RoomTypeID != nil {
		var rt models.RoomType
		if err := s.DB.First(&rt, *room.RoomTypeID).Error; err != nil {
			return fmt.Errorf("invalid room type %d: %w", *room.RoomTypeID, err)
		}
	}
	if room.Status == "" {
		room.Status = models.RoomVacant
	}
	return s.DB.Create(room).Error
}

func (s *RoomService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "roomId")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	res := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RoomService) Delete(id uint) error {
	res := s.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Available loads the inventory and the live bookings, then runs the
// availability resolver over the pair. The two reads are independent; the
// resolver is a pure function of the complete inputs.
func (s *RoomService) Available() ([]models.Room, error) {
	rooms, err := s.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	var active []models.Booking
	if err := s.DB.
		Where("status = ? AND actual_check_out_time IS NULL", models.BookingActive).
		Find(&active).Error; err != nil {
		return nil, fmt.Errorf("load active bookings: %w", err)
	}

	return ResolveAvailable(rooms, active), nil
}

// MarkClean flips a Dirty room back to Vacant after housekeeping. Any
// other stored status is rejected so a cleaner can't stomp an occupied or
// out-of-order room.
func (s *RoomService) MarkClean(id uint) error {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if room.Status != models.RoomDirty {
		return ErrRoomNotDirty
	}
	return s.DB.Model(&models.Room{}).Where("id = ?", id).
		Update("status", models.RoomVacant).Error
}
