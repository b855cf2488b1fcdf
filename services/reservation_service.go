package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pousada-backend/models"
	"pousada-backend/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrConflict             = errors.New("accommodation_unavailable")
	ErrAccommodationBlocked = errors.New("accommodation_blocked")
	ErrGuestRequired        = errors.New("guest_or_guest_name_required")
	ErrGuestNotFound        = errors.New("guest_not_found")
	ErrReservationNotFound  = errors.New("reservation_not_found")
	ErrInvalidTransition    = errors.New("invalid_status_transition")
)

// MinStayError carries the violation back to the caller, who may retry with
// AllowMinStayViolation set after an explicit override confirmation.
type MinStayError struct {
	Violation MinStayViolation
}

func (e *MinStayError) Error() string {
	return fmt.Sprintf("minimum_stay_violation: period %q requires %d nights, requested %d",
		e.Violation.PeriodName, e.Violation.Required, e.Violation.Requested)
}

// ReservationInput is the booking form payload for create and update.
type ReservationInput struct {
	AccommodationID uint   `json:"accommodationId"`
	GuestID         *uint  `json:"guestId,omitempty"`
	GuestName       string `json:"guestName,omitempty"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	People          int    `json:"people"`
	Breakfast       bool   `json:"breakfast"`
	Notes           string `json:"notes,omitempty"`

	// Optional manual total; when nil the Rate Resolver prices the stay.
	TotalPrice *float64 `json:"totalPrice,omitempty"`

	// Explicit override confirmation for minimum-stay violations.
	AllowMinStayViolation bool `json:"allowMinStayViolation,omitempty"`

	ExtraGuests []map[string]interface{} `json:"extraGuests,omitempty"`
}

type ReservationService struct {
	DB       *gorm.DB
	Rates    *RateService
	Calendar *CalendarService
}

func NewReservationService(db *gorm.DB, rates *RateService, calendar *CalendarService) *ReservationService {
	return &ReservationService{DB: db, Rates: rates, Calendar: calendar}
}

func (s *ReservationService) parseInput(in ReservationInput) (checkIn, checkOut time.Time, err error) {
	if in.AccommodationID == 0 {
		return checkIn, checkOut, fmt.Errorf("validation: accommodationId is required")
	}
	if strings.TrimSpace(in.CheckIn) == "" || strings.TrimSpace(in.CheckOut) == "" {
		return checkIn, checkOut, fmt.Errorf("validation: checkIn and checkOut are required")
	}
	checkIn, err = utils.ParseDate(in.CheckIn)
	if err != nil {
		return checkIn, checkOut, fmt.Errorf("validation: %v", err)
	}
	checkOut, err = utils.ParseDate(in.CheckOut)
	if err != nil {
		return checkIn, checkOut, fmt.Errorf("validation: %v", err)
	}
	if !checkIn.Before(checkOut) {
		return checkIn, checkOut, ErrInvalidStayRange
	}
	if in.GuestID == nil && strings.TrimSpace(in.GuestName) == "" {
		return checkIn, checkOut, ErrGuestRequired
	}
	if in.People <= 0 {
		return checkIn, checkOut, fmt.Errorf("validation: people must be positive")
	}
	return checkIn, checkOut, nil
}

// resolveTotal prices the stay unless the caller supplied a manual total.
// Minimum-stay violations surface as *MinStayError unless the override flag
// is set; the service never silently blocks or silently ignores them.
func (s *ReservationService) resolveTotal(in ReservationInput, checkIn, checkOut time.Time) (float64, error) {
	quote, err := s.Rates.Quote(in.AccommodationID, checkIn, checkOut, in.People, in.Breakfast)
	if err != nil {
		if in.TotalPrice != nil && (errors.Is(err, ErrNoRate) || errors.Is(err, ErrNoPeriod)) {
			// Manual price covers gaps in the rate tables, but the
			// min-stay check is then skipped too — nothing to check
			// against without a resolved period.
			return *in.TotalPrice, nil
		}
		return 0, err
	}

	if quote.MinStay != nil && !in.AllowMinStayViolation {
		return 0, &MinStayError{Violation: *quote.MinStay}
	}

	if in.TotalPrice != nil {
		return *in.TotalPrice, nil
	}
	return quote.Total, nil
}

// Create books a reservation. The availability check runs inside the
// transaction after taking a row lock on the accommodation, so two
// concurrent bookings for the same accommodation serialize and the loser
// sees the winner's row.
func (s *ReservationService) Create(in ReservationInput) (models.Reservation, error) {
	var reservation models.Reservation

	checkIn, checkOut, err := s.parseInput(in)
	if err != nil {
		return reservation, err
	}

	if in.GuestID != nil {
		var guest models.Guest
		if err := s.DB.First(&guest, *in.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return reservation, ErrGuestNotFound
			}
			return reservation, fmt.Errorf("db error checking guest: %w", err)
		}
	}

	total, err := s.resolveTotal(in, checkIn, checkOut)
	if err != nil {
		return reservation, err
	}

	extraJSON, _ := json.Marshal(in.ExtraGuests)

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var acc models.Accommodation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&acc, in.AccommodationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccommodationNotFound
			}
			return fmt.Errorf("failed to lock accommodation: %w", err)
		}

		if acc.BlocksRange(checkIn, checkOut) {
			return ErrAccommodationBlocked
		}

		existing, err := loadOverlapping(tx, in.AccommodationID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if HasConflict(existing, checkIn, checkOut, 0) {
			return ErrConflict
		}

		reservation = models.Reservation{
			AccommodationID: in.AccommodationID,
			GuestID:         in.GuestID,
			GuestName:       strings.TrimSpace(in.GuestName),
			ReferenceCode:   uuid.NewString(),
			Status:          models.ReservationConfirmed,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			People:          in.People,
			Breakfast:       in.Breakfast,
			TotalPrice:      total,
			Notes:           in.Notes,
			ExtraGuests:     datatypes.JSON(extraJSON),
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return reservation, txErr
	}

	if err := s.reload(&reservation); err != nil {
		return reservation, err
	}

	s.Calendar.SyncReservation(reservation)
	return reservation, nil
}

// Update edits a reservation in place. The edited reservation is excluded
// from the conflict check so it never conflicts with itself.
func (s *ReservationService) Update(id uint, in ReservationInput) (models.Reservation, error) {
	var reservation models.Reservation

	checkIn, checkOut, err := s.parseInput(in)
	if err != nil {
		return reservation, err
	}

	total, err := s.resolveTotal(in, checkIn, checkOut)
	if err != nil {
		return reservation, err
	}

	extraJSON, _ := json.Marshal(in.ExtraGuests)

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		var acc models.Accommodation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&acc, in.AccommodationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccommodationNotFound
			}
			return fmt.Errorf("failed to lock accommodation: %w", err)
		}

		if acc.BlocksRange(checkIn, checkOut) {
			return ErrAccommodationBlocked
		}

		existing, err := loadOverlapping(tx, in.AccommodationID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if HasConflict(existing, checkIn, checkOut, id) {
			return ErrConflict
		}

		updates := map[string]interface{}{
			"accommodation_id": in.AccommodationID,
			"guest_id":         in.GuestID,
			"guest_name":       strings.TrimSpace(in.GuestName),
			"check_in":         checkIn,
			"check_out":        checkOut,
			"people":           in.People,
			"breakfast":        in.Breakfast,
			"total_price":      total,
			"notes":            in.Notes,
			"extra_guests":     datatypes.JSON(extraJSON),
		}
		if err := tx.Model(&reservation).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update reservation: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return reservation, txErr
	}

	if err := s.reload(&reservation); err != nil {
		return reservation, err
	}

	s.Calendar.SyncReservation(reservation)
	return reservation, nil
}

// CheckIn transitions a confirmed or pending reservation to checked_in and
// stamps started_at.
func (s *ReservationService) CheckIn(id uint) (models.Reservation, error) {
	return s.transition(id,
		[]string{models.ReservationPending, models.ReservationConfirmed},
		models.ReservationCheckedIn, "started_at")
}

// CheckOut transitions a checked_in reservation to checked_out and stamps
// completed_at.
func (s *ReservationService) CheckOut(id uint) (models.Reservation, error) {
	return s.transition(id,
		[]string{models.ReservationCheckedIn},
		models.ReservationCheckedOut, "completed_at")
}

// Cancel moves any non-completed reservation to cancelled and removes the
// external calendar event.
func (s *ReservationService) Cancel(id uint) (models.Reservation, error) {
	reservation, err := s.transition(id,
		[]string{models.ReservationPending, models.ReservationConfirmed, models.ReservationCheckedIn},
		models.ReservationCancelled, "")
	if err != nil {
		return reservation, err
	}
	s.Calendar.RemoveReservation(reservation)
	return reservation, nil
}

func (s *ReservationService) transition(id uint, from []string, to string, stampColumn string) (models.Reservation, error) {
	var reservation models.Reservation

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		allowed := false
		for _, st := range from {
			if reservation.Status == st {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, to)
		}

		updates := map[string]interface{}{"status": to}
		if stampColumn != "" {
			updates[stampColumn] = time.Now().UTC()
		}
		return tx.Model(&reservation).Updates(updates).Error
	})
	if txErr != nil {
		return reservation, txErr
	}

	if err := s.reload(&reservation); err != nil {
		return reservation, err
	}
	return reservation, nil
}

func (s *ReservationService) reload(reservation *models.Reservation) error {
	return s.DB.
		Preload("Accommodation").
		Preload("Guest").
		First(reservation, reservation.ID).Error
}

func (s *ReservationService) GetByID(id uint) (models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.
		Preload("Accommodation").
		Preload("Guest").
		First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reservation, ErrReservationNotFound
		}
		return reservation, fmt.Errorf("failed to retrieve reservation: %w", err)
	}
	return reservation, nil
}

// GetAll lists reservations, optionally filtered by status and/or
// accommodation (zero values mean no filter).
func (s *ReservationService) GetAll(status string, accommodationID uint) ([]models.Reservation, error) {
	query := s.DB.
		Preload("Accommodation").
		Preload("Guest").
		Order("check_in DESC")

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if accommodationID != 0 {
		query = query.Where("accommodation_id = ?", accommodationID)
	}

	var list []models.Reservation
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

func (s *ReservationService) Delete(id uint) error {
	reservation, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Reservation{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	s.Calendar.RemoveReservation(reservation)
	return nil
}
