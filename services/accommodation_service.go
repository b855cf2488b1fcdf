package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pousada-backend/models"
	"pousada-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrInvalidCategory = errors.New("invalid_category")

// BlockInput toggles a manual block on an accommodation. Dates are optional;
// a block without them covers every date.
type BlockInput struct {
	Reason string `json:"reason"`
	Note   string `json:"note,omitempty"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

type AccommodationService struct {
	DB      *gorm.DB
	Storage Storage
}

func NewAccommodationService(db *gorm.DB, storage Storage) *AccommodationService {
	return &AccommodationService{DB: db, Storage: storage}
}

func (s *AccommodationService) Create(acc *models.Accommodation) error {
	acc.RoomNumber = strings.TrimSpace(acc.RoomNumber)
	if acc.RoomNumber == "" {
		return fmt.Errorf("validation: room number is required")
	}
	if !models.IsValidCategory(acc.Category) {
		return ErrInvalidCategory
	}
	if acc.Capacity <= 0 {
		return fmt.Errorf("validation: capacity must be positive")
	}
	return s.DB.Create(acc).Error
}

func (s *AccommodationService) GetAll() ([]models.Accommodation, error) {
	var accommodations []models.Accommodation
	err := s.DB.Order("room_number").Find(&accommodations).Error
	return accommodations, err
}

func (s *AccommodationService) GetByID(id uint) (models.Accommodation, error) {
	var acc models.Accommodation
	err := s.DB.First(&acc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return acc, ErrAccommodationNotFound
	}
	return acc, err
}

// Update applies a partial update; protected columns are stripped first.
func (s *AccommodationService) Update(id uint, updates map[string]interface{}) error {
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")
	delete(updates, "images")

	if cat, ok := updates["category"].(string); ok && !models.IsValidCategory(cat) {
		return ErrInvalidCategory
	}
	if capacity, ok := updates["capacity"].(float64); ok && capacity <= 0 {
		return fmt.Errorf("validation: capacity must be positive")
	}

	result := s.DB.Model(&models.Accommodation{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccommodationNotFound
	}
	return nil
}

func (s *AccommodationService) Delete(id uint) error {
	result := s.DB.Delete(&models.Accommodation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccommodationNotFound
	}
	return nil
}

// Block marks the accommodation out of service, optionally for a date range.
// Block state is independent of deletion and of any existing reservations;
// reservations already on the books stay visible on the occupancy grid.
func (s *AccommodationService) Block(id uint, in BlockInput) (models.Accommodation, error) {
	acc, err := s.GetByID(id)
	if err != nil {
		return acc, err
	}

	var start, end *time.Time
	if strings.TrimSpace(in.Start) != "" {
		t, err := utils.ParseDate(in.Start)
		if err != nil {
			return acc, fmt.Errorf("validation: %v", err)
		}
		start = &t
	}
	if strings.TrimSpace(in.End) != "" {
		t, err := utils.ParseDate(in.End)
		if err != nil {
			return acc, fmt.Errorf("validation: %v", err)
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return acc, fmt.Errorf("validation: block end before block start")
	}

	updates := map[string]interface{}{
		"blocked":      true,
		"block_reason": strings.TrimSpace(in.Reason),
		"block_note":   strings.TrimSpace(in.Note),
		"block_start":  start,
		"block_end":    end,
	}
	if err := s.DB.Model(&acc).Updates(updates).Error; err != nil {
		return acc, err
	}
	return s.GetByID(id)
}

func (s *AccommodationService) Unblock(id uint) (models.Accommodation, error) {
	acc, err := s.GetByID(id)
	if err != nil {
		return acc, err
	}
	updates := map[string]interface{}{
		"blocked":      false,
		"block_reason": "",
		"block_note":   "",
		"block_start":  nil,
		"block_end":    nil,
	}
	if err := s.DB.Model(&acc).Updates(updates).Error; err != nil {
		return acc, err
	}
	return s.GetByID(id)
}

func decodeImageList(raw datatypes.JSON) []string {
	var urls []string
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &urls); err != nil {
			log.Printf("warning: bad images JSON, resetting: %v", err)
		}
	}
	return urls
}

// AddImage uploads the image and appends its URL to the accommodation.
func (s *AccommodationService) AddImage(id uint, b64 string) (string, error) {
	acc, err := s.GetByID(id)
	if err != nil {
		return "", err
	}

	data, err := DecodeBase64Image(b64)
	if err != nil {
		return "", fmt.Errorf("validation: %v", err)
	}

	url, err := s.Storage.Upload(data, "accommodations")
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	urls := append(decodeImageList(acc.Images), url)
	encoded, _ := json.Marshal(urls)
	if err := s.DB.Model(&acc).Update("images", datatypes.JSON(encoded)).Error; err != nil {
		return "", err
	}
	return url, nil
}

// RemoveImage deletes the stored file (best-effort) and drops the URL from
// the accommodation.
func (s *AccommodationService) RemoveImage(id uint, url string) error {
	acc, err := s.GetByID(id)
	if err != nil {
		return err
	}

	urls := decodeImageList(acc.Images)
	kept := make([]string, 0, len(urls))
	found := false
	for _, u := range urls {
		if u == url {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return fmt.Errorf("image url not found on accommodation %d", id)
	}

	if err := s.Storage.Delete(url); err != nil {
		log.Printf("warning: failed to delete stored image %s: %v", url, err)
	}

	encoded, _ := json.Marshal(kept)
	return s.DB.Model(&acc).Update("images", datatypes.JSON(encoded)).Error
}
