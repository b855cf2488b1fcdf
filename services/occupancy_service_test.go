package services

import (
	"testing"
	"time"

	"pousada-backend/models"
)

func gridAcc() *models.Accommodation {
	return &models.Accommodation{ID: 1, Name: "Chalé 1"}
}

func TestClassifyCell_EmptyAndBoundaries(t *testing.T) {
	t.Parallel()

	reservations := []models.Reservation{
		stay(10, models.ReservationConfirmed, date(2026, time.July, 5), date(2026, time.July, 8)),
	}
	a := gridAcc()

	cases := []struct {
		day  time.Time
		want string
	}{
		{date(2026, time.July, 4), CellEmpty},
		{date(2026, time.July, 5), CellCheckin},
		{date(2026, time.July, 6), CellOccupied},
		{date(2026, time.July, 7), CellOccupied},
		{date(2026, time.July, 8), CellCheckout},
		{date(2026, time.July, 9), CellEmpty},
	}
	for _, c := range cases {
		cell := ClassifyCell(a, c.day, reservations)
		if cell.State != c.want {
			t.Fatalf("%v: want %s, got %s", c.day, c.want, cell.State)
		}
	}
}

func TestClassifyCell_Turnover(t *testing.T) {
	t.Parallel()

	d := date(2026, time.July, 8)
	reservations := []models.Reservation{
		stay(10, models.ReservationConfirmed, date(2026, time.July, 5), d),
		stay(11, models.ReservationConfirmed, d, date(2026, time.July, 11)),
	}

	cell := ClassifyCell(gridAcc(), d, reservations)
	if cell.State != CellTurnover {
		t.Fatalf("want turnover, got %s", cell.State)
	}
	if cell.CheckoutReservationID != 10 || cell.CheckinReservationID != 11 {
		t.Fatalf("turnover must carry both reservations: %+v", cell)
	}
}

func TestClassifyCell_CancelledIgnored(t *testing.T) {
	t.Parallel()

	reservations := []models.Reservation{
		stay(10, models.ReservationCancelled, date(2026, time.July, 5), date(2026, time.July, 8)),
	}
	cell := ClassifyCell(gridAcc(), date(2026, time.July, 6), reservations)
	if cell.State != CellEmpty {
		t.Fatalf("cancelled stay must not paint the grid, got %s", cell.State)
	}
}

func TestClassifyCell_OtherAccommodationIgnored(t *testing.T) {
	t.Parallel()

	other := stay(10, models.ReservationConfirmed, date(2026, time.July, 5), date(2026, time.July, 8))
	other.AccommodationID = 2

	cell := ClassifyCell(gridAcc(), date(2026, time.July, 6), []models.Reservation{other})
	if cell.State != CellEmpty {
		t.Fatalf("reservation on another accommodation leaked into the cell: %s", cell.State)
	}
}

func TestClassifyCell_Blocked(t *testing.T) {
	t.Parallel()

	start := date(2026, time.July, 10)
	end := date(2026, time.July, 12)
	a := gridAcc()
	a.Blocked = true
	a.BlockStart = &start
	a.BlockEnd = &end

	if cell := ClassifyCell(a, date(2026, time.July, 11), nil); cell.State != CellBlocked {
		t.Fatalf("want blocked inside range, got %s", cell.State)
	}
	if cell := ClassifyCell(a, date(2026, time.July, 13), nil); cell.State != CellEmpty {
		t.Fatalf("want empty outside range, got %s", cell.State)
	}

	// Open-ended block covers everything.
	a.BlockStart, a.BlockEnd = nil, nil
	if cell := ClassifyCell(a, date(2027, time.March, 1), nil); cell.State != CellBlocked {
		t.Fatalf("open-ended block must cover every date, got %s", cell.State)
	}
}

// The grid and the availability check must agree on the day-boundary
// convention: a date a stay paints only as checkout must accept a new
// check-in on that same date.
func TestClassifyCell_AgreesWithAvailability(t *testing.T) {
	t.Parallel()

	checkOut := date(2026, time.July, 8)
	existing := []models.Reservation{
		stay(10, models.ReservationConfirmed, date(2026, time.July, 5), checkOut),
	}

	cell := ClassifyCell(gridAcc(), checkOut, existing)
	if cell.State != CellCheckout {
		t.Fatalf("want checkout cell, got %s", cell.State)
	}
	if HasConflict(existing, checkOut, checkOut.AddDate(0, 0, 2), 0) {
		t.Fatalf("checkout-only date must accept a new check-in")
	}

	// And a mid-stay date must reject one.
	mid := date(2026, time.July, 6)
	if cell := ClassifyCell(gridAcc(), mid, existing); cell.State != CellOccupied {
		t.Fatalf("want occupied cell, got %s", cell.State)
	}
	if !HasConflict(existing, mid, mid.AddDate(0, 0, 1), 0) {
		t.Fatalf("occupied date must reject a new check-in")
	}
}
