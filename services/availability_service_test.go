package services

import (
	"testing"
	"time"

	"pousada-backend/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(id uint, status string, checkIn, checkOut time.Time) models.Reservation {
	return models.Reservation{
		ID:              id,
		AccommodationID: 1,
		Status:          status,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
	}
}

func TestHasConflict_DisjointRangesBookable(t *testing.T) {
	t.Parallel()

	existing := []models.Reservation{
		stay(1, models.ReservationConfirmed, date(2026, time.July, 5), date(2026, time.July, 8)),
	}

	// Entirely before.
	if HasConflict(existing, date(2026, time.July, 1), date(2026, time.July, 5), 0) {
		t.Fatalf("range ending at existing check-in must be bookable")
	}
	// Entirely after.
	if HasConflict(existing, date(2026, time.July, 8), date(2026, time.July, 10), 0) {
		t.Fatalf("range starting at existing check-out must be bookable")
	}
}

func TestHasConflict_SameDayTurnover(t *testing.T) {
	t.Parallel()

	// Checkout on D and check-in on D must both be accepted.
	d := date(2026, time.July, 8)
	existing := []models.Reservation{
		stay(1, models.ReservationConfirmed, date(2026, time.July, 5), d),
	}
	if HasConflict(existing, d, d.AddDate(0, 0, 3), 0) {
		t.Fatalf("same-day turnover must not conflict")
	}
}

func TestHasConflict_OverlapRejected(t *testing.T) {
	t.Parallel()

	existing := []models.Reservation{
		stay(1, models.ReservationConfirmed, date(2026, time.July, 5), date(2026, time.July, 8)),
	}

	cases := [][2]time.Time{
		{date(2026, time.July, 4), date(2026, time.July, 6)},  // overlaps start
		{date(2026, time.July, 7), date(2026, time.July, 10)}, // overlaps end
		{date(2026, time.July, 6), date(2026, time.July, 7)},  // contained
		{date(2026, time.July, 4), date(2026, time.July, 10)}, // contains
	}
	for _, c := range cases {
		if !HasConflict(existing, c[0], c[1], 0) {
			t.Fatalf("overlap %v-%v must conflict", c[0], c[1])
		}
	}
}

func TestHasConflict_CancelledIgnored(t *testing.T) {
	t.Parallel()

	existing := []models.Reservation{
		stay(1, models.ReservationCancelled, date(2026, time.July, 5), date(2026, time.July, 8)),
	}
	if HasConflict(existing, date(2026, time.July, 5), date(2026, time.July, 8), 0) {
		t.Fatalf("cancelled reservations must not occupy")
	}
}

func TestHasConflict_ExcludeSelfOnEdit(t *testing.T) {
	t.Parallel()

	existing := []models.Reservation{
		stay(7, models.ReservationConfirmed, date(2026, time.July, 5), date(2026, time.July, 8)),
	}

	// Extending reservation 7 by one night: it must not conflict with itself.
	if HasConflict(existing, date(2026, time.July, 5), date(2026, time.July, 9), 7) {
		t.Fatalf("edited reservation must not conflict with itself")
	}
	if !HasConflict(existing, date(2026, time.July, 5), date(2026, time.July, 9), 0) {
		t.Fatalf("without exclusion the overlap must conflict")
	}
}

func TestHasConflict_OtherStatusesOccupy(t *testing.T) {
	t.Parallel()

	for _, status := range []string{
		models.ReservationPending,
		models.ReservationConfirmed,
		models.ReservationCheckedIn,
		models.ReservationCheckedOut,
	} {
		existing := []models.Reservation{
			stay(1, status, date(2026, time.July, 5), date(2026, time.July, 8)),
		}
		if !HasConflict(existing, date(2026, time.July, 6), date(2026, time.July, 9), 0) {
			t.Fatalf("status %q must occupy", status)
		}
	}
}
