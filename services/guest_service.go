package services

import (
	"errors"
	"strings"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Order("full_name").Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint) (models.Guest, error) {
	var guest models.Guest
	err := s.DB.First(&guest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return guest, ErrNotFound
	}
	return guest, err
}

func (s *GuestService) Search(query string) ([]models.Guest, error) {
	q := "%" + strings.TrimSpace(query) + "%"
	var guests []models.Guest
	err := s.DB.
		Where("full_name LIKE ? OR mobile LIKE ? OR id_number LIKE ?", q, q, q).
		Order("full_name").
		Find(&guests).Error
	return guests, err
}

// InsertUpdate is the idempotent guest upsert: a zero id creates, a
// non-zero id updates that record in place. Always returns the persisted
// row so callers get the assigned id back.
func (s *GuestService) InsertUpdate(guest models.Guest) (models.Guest, error) {
	guest.FullName = strings.TrimSpace(guest.FullName)
	if guest.FullName == "" {
		return models.Guest{}, errors.New("guest name is required")
	}

	if guest.ID == 0 {
		if err := s.DB.Create(&guest).Error; err != nil {
			return models.Guest{}, err
		}
		return guest, nil
	}

	var existing models.Guest
	if err := s.DB.First(&existing, guest.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Guest{}, ErrNotFound
		}
		return models.Guest{}, err
	}
	if err := s.DB.Model(&existing).Updates(map[string]interface{}{
		"full_name": guest.FullName,
		"mobile":    guest.Mobile,
		"email":     guest.Email,
		"id_type":   guest.IDType,
		"id_number": guest.IDNumber,
		"address":   guest.Address,
		"city":      guest.City,
		"country":   guest.Country,
	}).Error; err != nil {
		return models.Guest{}, err
	}
	return s.GetByID(guest.ID)
}

func (s *GuestService) Delete(id uint) error {
	res := s.DB.Delete(&models.Guest{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
