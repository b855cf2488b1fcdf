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
	ErrNoPeriod = errors.New("no_price_period_for_date")
	ErrNoRate   = errors.New("no_rate_for_occupancy")
)

// NightRate is one night of a quote, tagged with the period that priced it.
type NightRate struct {
	Date       time.Time `json:"date"`
	PeriodID   uint      `json:"periodId"`
	PeriodName string    `json:"periodName"`
	Nightly    float64   `json:"nightly"`
}

// MinStayViolation is reported, never enforced: the caller decides whether to
// block the booking or ask for an override.
type MinStayViolation struct {
	Required   int    `json:"required"`
	Requested  int    `json:"requested"`
	PeriodName string `json:"periodName"`
}

type Quote struct {
	Nights    int               `json:"nights"`
	People    int               `json:"people"`
	Breakfast bool              `json:"breakfast"`
	Total     float64           `json:"total"`
	Rates     []NightRate       `json:"rates"`
	MinStay   *MinStayViolation `json:"minStay,omitempty"`
}

// ResolvePeriod picks the period that prices the given date. Holiday periods
// beat regular ones; among periods with the same flag the most recently
// created wins (CreatedAt, then ID). Deterministic by construction — the
// source of truth for the tie-break lives here and nowhere else.
func ResolvePeriod(periods []models.PricePeriod, date time.Time) *models.PricePeriod {
	date = utils.DateOnly(date)

	var best *models.PricePeriod
	for i := range periods {
		p := &periods[i]
		if !p.Covers(date) {
			continue
		}
		if best == nil {
			best = p
			continue
		}
		if p.Holiday != best.Holiday {
			if p.Holiday {
				best = p
			}
			continue
		}
		if p.CreatedAt.After(best.CreatedAt) ||
			(p.CreatedAt.Equal(best.CreatedAt) && p.ID > best.ID) {
			best = p
		}
	}
	return best
}

// FindEntry locates the exact-occupancy, exact-breakfast entry for a period.
// No fallback: a missing entry means "no price available" for that request.
func FindEntry(entries []models.PriceEntry, periodID uint, people int, breakfast bool) *models.PriceEntry {
	for i := range entries {
		e := &entries[i]
		if e.PricePeriodID == periodID && e.People == people && e.Breakfast == breakfast {
			return e
		}
	}
	return nil
}

// BuildQuote prices a stay from already-loaded periods and entries. Each
// night resolves against its own period, so stays crossing a period boundary
// are prorated per night. A night with no period or no matching entry fails
// the whole quote. The minimum-stay report is computed against the check-in
// night's period.
func BuildQuote(periods []models.PricePeriod, entries []models.PriceEntry, checkIn, checkOut time.Time, people int, breakfast bool) (*Quote, error) {
	checkIn = utils.DateOnly(checkIn)
	checkOut = utils.DateOnly(checkOut)
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidStayRange
	}

	nights := utils.Nights(checkIn, checkOut)
	quote := &Quote{
		Nights:    nights,
		People:    people,
		Breakfast: breakfast,
		Rates:     make([]NightRate, 0, nights),
	}

	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		period := ResolvePeriod(periods, d)
		if period == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoPeriod, d.Format(utils.DateLayout))
		}
		entry := FindEntry(entries, period.ID, people, breakfast)
		if entry == nil {
			return nil, fmt.Errorf("%w: period %q, %d people", ErrNoRate, period.Name, people)
		}
		quote.Rates = append(quote.Rates, NightRate{
			Date:       d,
			PeriodID:   period.ID,
			PeriodName: period.Name,
			Nightly:    entry.NightlyPrice,
		})
		quote.Total += entry.NightlyPrice
	}

	if first := ResolvePeriod(periods, checkIn); first != nil && nights < first.MinNights {
		quote.MinStay = &MinStayViolation{
			Required:   first.MinNights,
			Requested:  nights,
			PeriodName: first.Name,
		}
	}

	return quote, nil
}

// RateService wraps the pure resolution helpers with data access.
type RateService struct {
	DB *gorm.DB
}

func NewRateService(db *gorm.DB) *RateService {
	return &RateService{DB: db}
}

func (s *RateService) loadPeriodsCovering(from, to time.Time) ([]models.PricePeriod, error) {
	var periods []models.PricePeriod
	err := s.DB.
		Where("start_date <= ? AND end_date >= ?", to, from).
		Find(&periods).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load price periods: %w", err)
	}
	return periods, nil
}

// ResolveRate returns the price entry for a single night, or ErrNoPeriod /
// ErrNoRate when nothing applies.
func (s *RateService) ResolveRate(accommodationID uint, date time.Time, people int, breakfast bool) (*models.PriceEntry, error) {
	date = utils.DateOnly(date)

	periods, err := s.loadPeriodsCovering(date, date)
	if err != nil {
		return nil, err
	}
	period := ResolvePeriod(periods, date)
	if period == nil {
		return nil, ErrNoPeriod
	}

	var entries []models.PriceEntry
	if err := s.DB.
		Where("accommodation_id = ? AND price_period_id = ?", accommodationID, period.ID).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load price entries: %w", err)
	}

	entry := FindEntry(entries, period.ID, people, breakfast)
	if entry == nil {
		return nil, ErrNoRate
	}
	return entry, nil
}

// Quote prices a whole stay for one accommodation.
func (s *RateService) Quote(accommodationID uint, checkIn, checkOut time.Time, people int, breakfast bool) (*Quote, error) {
	checkIn = utils.DateOnly(checkIn)
	checkOut = utils.DateOnly(checkOut)
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidStayRange
	}

	// Last occupied night is checkOut-1.
	periods, err := s.loadPeriodsCovering(checkIn, checkOut.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	var entries []models.PriceEntry
	if err := s.DB.
		Where("accommodation_id = ?", accommodationID).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load price entries: %w", err)
	}

	return BuildQuote(periods, entries, checkIn, checkOut, people, breakfast)
}
