package services

import (
	"errors"
	"fmt"
	"strings"

	"pousada-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) Create(guest *models.Guest) error {
	guest.FullName = strings.TrimSpace(guest.FullName)
	if guest.FullName == "" {
		return fmt.Errorf("validation: full name is required")
	}
	guest.Active = true
	return s.DB.Create(guest).Error
}

// GetAll lists active guests; includeInactive widens it to everyone, which
// the dashboard uses when resolving guests on historical reservations.
func (s *GuestService) GetAll(includeInactive bool) ([]models.Guest, error) {
	query := s.DB.Order("full_name")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var guests []models.Guest
	err := query.Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint) (models.Guest, error) {
	var guest models.Guest
	err := s.DB.First(&guest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return guest, ErrGuestNotFound
	}
	return guest, err
}

// Search matches by name, document or email, active guests only.
func (s *GuestService) Search(term string) ([]models.Guest, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"

	var guests []models.Guest
	err := s.DB.
		Where("active = ?", true).
		Where("LOWER(full_name) LIKE ? OR LOWER(document) LIKE ? OR LOWER(email) LIKE ?", like, like, like).
		Order("full_name").
		Find(&guests).Error
	return guests, err
}

func (s *GuestService) Update(id uint, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	result := s.DB.Model(&models.Guest{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGuestNotFound
	}
	return nil
}

// Deactivate is the guest "delete": the row stays so historical reservations
// keep resolving, it just drops out of active listings.
func (s *GuestService) Deactivate(id uint) error {
	result := s.DB.Model(&models.Guest{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGuestNotFound
	}
	return nil
}

func (s *GuestService) Reactivate(id uint) error {
	result := s.DB.Model(&models.Guest{}).Where("id = ?", id).Update("active", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGuestNotFound
	}
	return nil
}
