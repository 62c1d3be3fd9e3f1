package services

import (
	"errors"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Order("name").Find(&types).Error
	return types, err
}

func (s *RoomTypeService) GetByID(id uint) (models.RoomType, error) {
	var rt models.RoomType
	err := s.DB.First(&rt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rt, ErrNotFound
	}
	return rt, err
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	return s.DB.Create(rt).Error
}

func (s *RoomTypeService) Update(id uint, rt models.RoomType) error {
	res := s.DB.Model(&models.RoomType{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       rt.Name,
		"base_rate":  rt.BaseRate,
		"max_guests": rt.MaxGuests,
		"amenities":  rt.Amenities,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RoomTypeService) Delete(id uint) error {
	res := s.DB.Delete(&models.RoomType{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
