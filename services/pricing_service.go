package services

import (
	"errors"
	"fmt"
	"log"

	"pousada-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPeriodNotFound = errors.New("price_period_not_found")

// PriceOption is one row of the bulk pricing form: an occupancy count with
// its with- and without-breakfast nightly prices.
type PriceOption struct {
	People           int     `json:"people"`
	WithBreakfast    float64 `json:"withBreakfast"`
	WithoutBreakfast float64 `json:"withoutBreakfast"`
}

// BulkResult summarizes a best-effort batch: per-entry failures are logged
// and skipped, never rolled back.
type BulkResult struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// BuildCategoryEntries expands price options into the concrete entries a bulk
// update should write: every non-excluded accommodation of the category gets,
// for every option with people <= capacity, one entry per breakfast flag.
func BuildCategoryEntries(accommodations []models.Accommodation, periodID uint, options []PriceOption, excludedIDs []uint) ([]models.PriceEntry, int) {
	excluded := make(map[uint]bool, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = true
	}

	entries := make([]models.PriceEntry, 0, len(accommodations)*len(options)*2)
	skipped := 0
	for i := range accommodations {
		acc := &accommodations[i]
		if excluded[acc.ID] {
			skipped += len(options) * 2
			continue
		}
		for _, opt := range options {
			if opt.People <= 0 || opt.People > acc.Capacity {
				skipped += 2
				continue
			}
			entries = append(entries,
				models.PriceEntry{
					AccommodationID: acc.ID,
					PricePeriodID:   periodID,
					People:          opt.People,
					Breakfast:       true,
					NightlyPrice:    opt.WithBreakfast,
				},
				models.PriceEntry{
					AccommodationID: acc.ID,
					PricePeriodID:   periodID,
					People:          opt.People,
					Breakfast:       false,
					NightlyPrice:    opt.WithoutBreakfast,
				},
			)
		}
	}
	return entries, skipped
}

// PricingService manages price entries, including the category-wide bulk
// updater. All writes go through a single atomic upsert keyed by the
// composite unique index, so there is no find-then-write round trip to race.
type PricingService struct {
	DB *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{DB: db}
}

// UpsertEntry inserts or updates one entry on the natural key
// (accommodation, period, people, breakfast) in a single statement.
func (s *PricingService) UpsertEntry(entry *models.PriceEntry) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "accommodation_id"},
			{Name: "price_period_id"},
			{Name: "people"},
			{Name: "breakfast"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"nightly_price", "updated_at"}),
	}).Create(entry).Error
}

// ApplyCategoryPricing applies price options to every accommodation of a
// category, minus exclusions, capped by capacity. Each entry is upserted
// independently; a failure is logged and the batch continues.
func (s *PricingService) ApplyCategoryPricing(category string, periodID uint, options []PriceOption, excludedIDs []uint) (BulkResult, error) {
	var result BulkResult

	var period models.PricePeriod
	if err := s.DB.First(&period, periodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, ErrPeriodNotFound
		}
		return result, fmt.Errorf("failed to load price period: %w", err)
	}

	var accommodations []models.Accommodation
	if err := s.DB.Where("category = ?", category).Find(&accommodations).Error; err != nil {
		return result, fmt.Errorf("failed to load accommodations: %w", err)
	}

	entries, skipped := BuildCategoryEntries(accommodations, periodID, options, excludedIDs)
	result.Skipped = skipped

	for i := range entries {
		if err := s.UpsertEntry(&entries[i]); err != nil {
			log.Printf("bulk pricing: entry (acc=%d people=%d breakfast=%t) failed: %v",
				entries[i].AccommodationID, entries[i].People, entries[i].Breakfast, err)
			result.Failed++
			continue
		}
		result.Applied++
	}

	return result, nil
}

func (s *PricingService) EntriesByPeriod(periodID uint) ([]models.PriceEntry, error) {
	var entries []models.PriceEntry
	err := s.DB.Where("price_period_id = ?", periodID).Order("accommodation_id, people, breakfast").Find(&entries).Error
	return entries, err
}

func (s *PricingService) EntriesByAccommodation(accommodationID uint) ([]models.PriceEntry, error) {
	var entries []models.PriceEntry
	err := s.DB.Where("accommodation_id = ?", accommodationID).Order("price_period_id, people, breakfast").Find(&entries).Error
	return entries, err
}

func (s *PricingService) DeleteEntry(id uint) error {
	result := s.DB.Delete(&models.PriceEntry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
