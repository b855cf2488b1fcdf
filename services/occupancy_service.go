package services

import (
	"fmt"
	"time"

	"pousada-backend/models"
	"pousada-backend/utils"

	"gorm.io/gorm"
)

// Cell states for the occupancy grid. Turnover renders as checkout + checkin
// in the same cell, so the cell also carries both reservation ids.
const (
	CellEmpty    = "empty"
	CellBlocked  = "blocked"
	CellCheckout = "checkout"
	CellCheckin  = "checkin"
	CellOccupied = "occupied"
	CellTurnover = "turnover"
)

type OccupancyCell struct {
	AccommodationID uint      `json:"accommodationId"`
	Date            time.Time `json:"date"`
	State           string    `json:"state"`

	// Set for checkout/checkin/turnover/occupied states.
	CheckoutReservationID uint `json:"checkoutReservationId,omitempty"`
	CheckinReservationID  uint `json:"checkinReservationId,omitempty"`
	OccupiedReservationID uint `json:"occupiedReservationId,omitempty"`
}

// ClassifyCell derives the visual state of one (accommodation, date) cell
// from the same half-open convention the availability check uses: check_out
// on the date is a checkout event, check_in on the date is a check-in event,
// strictly inside the range is mid-stay. Under that convention a date can
// carry at most one checkout and one check-in, and never a boundary event
// plus a mid-stay occupier.
func ClassifyCell(acc *models.Accommodation, date time.Time, reservations []models.Reservation) OccupancyCell {
	date = utils.DateOnly(date)
	cell := OccupancyCell{AccommodationID: acc.ID, Date: date, State: CellEmpty}

	for i := range reservations {
		r := &reservations[i]
		if r.AccommodationID != acc.ID || !r.Occupies() {
			continue
		}
		switch {
		case utils.SameDate(r.CheckOut, date):
			cell.CheckoutReservationID = r.ID
		case utils.SameDate(r.CheckIn, date):
			cell.CheckinReservationID = r.ID
		case date.After(r.CheckIn) && date.Before(r.CheckOut):
			cell.OccupiedReservationID = r.ID
		}
	}

	switch {
	case cell.CheckoutReservationID != 0 && cell.CheckinReservationID != 0:
		cell.State = CellTurnover
	case cell.CheckoutReservationID != 0:
		cell.State = CellCheckout
	case cell.CheckinReservationID != 0:
		cell.State = CellCheckin
	case cell.OccupiedReservationID != 0:
		cell.State = CellOccupied
	case acc.BlocksDate(date):
		cell.State = CellBlocked
	}

	return cell
}

// OccupancyService builds the calendar grid the dashboard renders.
type OccupancyService struct {
	DB *gorm.DB
}

func NewOccupancyService(db *gorm.DB) *OccupancyService {
	return &OccupancyService{DB: db}
}

// Grid returns one cell per (accommodation, date) over [from, to] inclusive.
func (s *OccupancyService) Grid(from, to time.Time) ([]OccupancyCell, error) {
	from = utils.DateOnly(from)
	to = utils.DateOnly(to)
	if to.Before(from) {
		return nil, fmt.Errorf("invalid grid range: %s after %s",
			from.Format(utils.DateLayout), to.Format(utils.DateLayout))
	}

	var accommodations []models.Accommodation
	if err := s.DB.Order("room_number").Find(&accommodations).Error; err != nil {
		return nil, fmt.Errorf("failed to load accommodations: %w", err)
	}

	// Boundary events on the edges belong to stays reaching outside the
	// grid, so the filter keeps any stay whose closed [check_in, check_out]
	// span touches it.
	var reservations []models.Reservation
	if err := s.DB.
		Where("status <> ?", models.ReservationCancelled).
		Where("check_in <= ? AND check_out >= ?", to, from).
		Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	days := utils.Nights(from, to) + 1
	cells := make([]OccupancyCell, 0, len(accommodations)*days)
	for i := range accommodations {
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			cells = append(cells, ClassifyCell(&accommodations[i], d, reservations))
		}
	}
	return cells, nil
}
