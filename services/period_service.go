package services

import (
	"errors"
	"fmt"
	"strings"

	"pousada-backend/models"
	"pousada-backend/utils"

	"gorm.io/gorm"
)

// PeriodInput is the price period form payload.
type PeriodInput struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Holiday   bool   `json:"holiday"`
	MinNights int    `json:"minNights"`
}

type PeriodService struct {
	DB *gorm.DB
}

func NewPeriodService(db *gorm.DB) *PeriodService {
	return &PeriodService{DB: db}
}

func (s *PeriodService) validate(in PeriodInput) (*models.PricePeriod, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("validation: name is required")
	}
	start, err := utils.ParseDate(in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("validation: %v", err)
	}
	end, err := utils.ParseDate(in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("validation: %v", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("validation: end date before start date")
	}
	minNights := in.MinNights
	if minNights < 1 {
		minNights = 1
	}
	return &models.PricePeriod{
		Name:      strings.TrimSpace(in.Name),
		StartDate: start,
		EndDate:   end,
		Holiday:   in.Holiday,
		MinNights: minNights,
	}, nil
}

func (s *PeriodService) Create(in PeriodInput) (models.PricePeriod, error) {
	period, err := s.validate(in)
	if err != nil {
		return models.PricePeriod{}, err
	}
	if err := s.DB.Create(period).Error; err != nil {
		return *period, fmt.Errorf("failed to create price period: %w", err)
	}
	return *period, nil
}

func (s *PeriodService) GetAll() ([]models.PricePeriod, error) {
	var periods []models.PricePeriod
	err := s.DB.Order("start_date").Find(&periods).Error
	return periods, err
}

func (s *PeriodService) GetByID(id uint) (models.PricePeriod, error) {
	var period models.PricePeriod
	err := s.DB.First(&period, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return period, ErrPeriodNotFound
	}
	return period, err
}

func (s *PeriodService) Update(id uint, in PeriodInput) (models.PricePeriod, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return existing, err
	}
	period, err := s.validate(in)
	if err != nil {
		return existing, err
	}

	updates := map[string]interface{}{
		"name":       period.Name,
		"start_date": period.StartDate,
		"end_date":   period.EndDate,
		"holiday":    period.Holiday,
		"min_nights": period.MinNights,
	}
	if err := s.DB.Model(&existing).Updates(updates).Error; err != nil {
		return existing, fmt.Errorf("failed to update price period: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes the period and its price entries in one transaction;
// orphaned entries would otherwise shadow future periods with the same id.
func (s *PeriodService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("price_period_id = ?", id).Delete(&models.PriceEntry{}).Error; err != nil {
			return fmt.Errorf("failed to delete price entries: %w", err)
		}
		result := tx.Delete(&models.PricePeriod{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPeriodNotFound
		}
		return nil
	})
}
