package services

import (
	"errors"
	"fmt"
	"time"

	"pousada-backend/models"
	"pousada-backend/utils"

	"gorm.io/gorm"
)

var (
	ErrInvalidStayRange      = errors.New("check_in must be before check_out")
	ErrAccommodationNotFound = errors.New("accommodation_not_found")
)

// AvailabilityService answers "can this accommodation take a stay over this
// range". It is read-only; write-time re-validation happens inside the
// reservation transaction (see ReservationService.Create).
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// HasConflict reports whether any occupying reservation overlaps the
// half-open range [checkIn, checkOut). excludeID removes one reservation from
// consideration so an edit never conflicts with itself; 0 excludes nothing.
func HasConflict(existing []models.Reservation, checkIn, checkOut time.Time, excludeID uint) bool {
	for i := range existing {
		r := &existing[i]
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if !r.Occupies() {
			continue
		}
		if utils.RangesOverlap(r.CheckIn, r.CheckOut, checkIn, checkOut) {
			return true
		}
	}
	return false
}

// loadOverlapping fetches non-cancelled reservations whose range overlaps
// [checkIn, checkOut). The overlap filter runs server-side; HasConflict is
// still applied on the result so the exclusion and status rules live in one
// place.
func loadOverlapping(db *gorm.DB, accommodationID uint, checkIn, checkOut time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := db.
		Where("accommodation_id = ?", accommodationID).
		Where("status <> ?", models.ReservationCancelled).
		Where("check_in < ? AND ? < check_out", checkOut, checkIn).
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}
	return reservations, nil
}

// IsAvailable checks both manual blocks and reservation conflicts.
// excludeReservationID (0 = none) supports edit-in-place validation.
func (s *AvailabilityService) IsAvailable(accommodationID uint, checkIn, checkOut time.Time, excludeReservationID uint) (bool, error) {
	checkIn = utils.DateOnly(checkIn)
	checkOut = utils.DateOnly(checkOut)
	if !checkIn.Before(checkOut) {
		return false, ErrInvalidStayRange
	}

	var acc models.Accommodation
	if err := s.DB.First(&acc, accommodationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrAccommodationNotFound
		}
		return false, fmt.Errorf("failed to load accommodation: %w", err)
	}

	if acc.BlocksRange(checkIn, checkOut) {
		return false, nil
	}

	reservations, err := loadOverlapping(s.DB, accommodationID, checkIn, checkOut)
	if err != nil {
		return false, err
	}

	return !HasConflict(reservations, checkIn, checkOut, excludeReservationID), nil
}
