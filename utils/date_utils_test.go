package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate_PlainAndRFC3339(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("2026-07-10")
	if err != nil {
		t.Fatalf("plain date: %v", err)
	}
	if !got.Equal(date(2026, time.July, 10)) {
		t.Fatalf("plain date: got %v", got)
	}

	got, err = ParseDate("2026-07-10T15:04:05Z")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if !got.Equal(date(2026, time.July, 10)) {
		t.Fatalf("rfc3339 should normalize to midnight: got %v", got)
	}

	if _, err := ParseDate("10/07/2026"); err == nil {
		t.Fatalf("expected error for unsupported layout")
	}
}

func TestNights(t *testing.T) {
	t.Parallel()

	if n := Nights(date(2026, time.July, 10), date(2026, time.July, 13)); n != 3 {
		t.Fatalf("want 3 nights, got %d", n)
	}
	if n := Nights(date(2026, time.July, 10), date(2026, time.July, 11)); n != 1 {
		t.Fatalf("want 1 night, got %d", n)
	}
}

func TestRangesOverlap_HalfOpen(t *testing.T) {
	t.Parallel()

	a1, a2 := date(2026, time.July, 10), date(2026, time.July, 13)

	// Checkout day == check-in day: no overlap in either order.
	if RangesOverlap(a1, a2, a2, a2.AddDate(0, 0, 2)) {
		t.Fatalf("back-to-back ranges must not overlap")
	}
	if RangesOverlap(a2, a2.AddDate(0, 0, 2), a1, a2) {
		t.Fatalf("back-to-back ranges must not overlap (reversed)")
	}

	// One shared night overlaps.
	if !RangesOverlap(a1, a2, a2.AddDate(0, 0, -1), a2.AddDate(0, 0, 1)) {
		t.Fatalf("ranges sharing a night must overlap")
	}

	// Containment overlaps.
	if !RangesOverlap(a1, a2, a1.AddDate(0, 0, 1), a2.AddDate(0, 0, -1)) {
		t.Fatalf("contained range must overlap")
	}
}
