package services

import (
	"errors"
	"testing"
	"time"

	"pousada-backend/models"
)

func period(id uint, name string, start, end time.Time, holiday bool, minNights int, createdAt time.Time) models.PricePeriod {
	return models.PricePeriod{
		ID:        id,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Holiday:   holiday,
		MinNights: minNights,
		CreatedAt: createdAt,
	}
}

func entry(periodID uint, people int, breakfast bool, price float64) models.PriceEntry {
	return models.PriceEntry{
		AccommodationID: 1,
		PricePeriodID:   periodID,
		People:          people,
		Breakfast:       breakfast,
		NightlyPrice:    price,
	}
}

func julyFixture() ([]models.PricePeriod, []models.PriceEntry) {
	periods := []models.PricePeriod{
		period(1, "July", date(2026, time.July, 1), date(2026, time.July, 31), false, 2, date(2026, time.January, 1)),
	}
	entries := []models.PriceEntry{
		entry(1, 2, true, 200),
		entry(1, 2, false, 180),
		entry(1, 4, true, 300),
		entry(1, 4, false, 270),
	}
	return periods, entries
}

func TestResolvePeriod_HolidayPrecedence(t *testing.T) {
	t.Parallel()

	regular := period(1, "July", date(2026, time.July, 1), date(2026, time.July, 31), false, 1, date(2026, time.January, 1))
	holiday := period(2, "Independence Week", date(2026, time.July, 5), date(2026, time.July, 12), true, 3, date(2026, time.February, 1))
	periods := []models.PricePeriod{regular, holiday}

	got := ResolvePeriod(periods, date(2026, time.July, 7))
	if got == nil || got.ID != 2 {
		t.Fatalf("holiday period must win, got %+v", got)
	}

	// Outside the holiday range the regular period applies.
	got = ResolvePeriod(periods, date(2026, time.July, 20))
	if got == nil || got.ID != 1 {
		t.Fatalf("regular period must apply outside holiday range, got %+v", got)
	}

	// Order of the input slice must not matter.
	got = ResolvePeriod([]models.PricePeriod{holiday, regular}, date(2026, time.July, 7))
	if got == nil || got.ID != 2 {
		t.Fatalf("holiday precedence must not depend on slice order")
	}
}

func TestResolvePeriod_SameFlagTieBreak(t *testing.T) {
	t.Parallel()

	older := period(1, "Old High Season", date(2026, time.July, 1), date(2026, time.July, 31), false, 1, date(2026, time.January, 1))
	newer := period(2, "New High Season", date(2026, time.July, 1), date(2026, time.July, 31), false, 1, date(2026, time.March, 1))

	for _, periods := range [][]models.PricePeriod{
		{older, newer},
		{newer, older},
	} {
		got := ResolvePeriod(periods, date(2026, time.July, 10))
		if got == nil || got.ID != 2 {
			t.Fatalf("most recently created period must win the tie, got %+v", got)
		}
	}
}

func TestResolvePeriod_NoCoverage(t *testing.T) {
	t.Parallel()

	periods := []models.PricePeriod{
		period(1, "July", date(2026, time.July, 1), date(2026, time.July, 31), false, 1, time.Time{}),
	}
	if got := ResolvePeriod(periods, date(2026, time.August, 1)); got != nil {
		t.Fatalf("no period covers August 1, got %+v", got)
	}
}

func TestFindEntry_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	_, entries := julyFixture()

	got := FindEntry(entries, 1, 2, false)
	if got == nil || got.NightlyPrice != 180 {
		t.Fatalf("want 180 for 2 people without breakfast, got %+v", got)
	}

	// No fallback to another occupancy.
	if got := FindEntry(entries, 1, 3, false); got != nil {
		t.Fatalf("no entry for 3 people, want nil, got %+v", got)
	}
	// Breakfast flag must match exactly.
	if got := FindEntry(entries, 1, 2, true); got == nil || got.NightlyPrice != 200 {
		t.Fatalf("want 200 for 2 people with breakfast, got %+v", got)
	}
}

func TestBuildQuote_JulyScenario(t *testing.T) {
	t.Parallel()

	periods, entries := julyFixture()

	// 3 nights, 2 guests, without breakfast: 180/night, total 540, no
	// minimum-stay violation.
	quote, err := BuildQuote(periods, entries, date(2026, time.July, 10), date(2026, time.July, 13), 2, false)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if quote.Nights != 3 {
		t.Fatalf("want 3 nights, got %d", quote.Nights)
	}
	if quote.Total != 540 {
		t.Fatalf("want total 540, got %v", quote.Total)
	}
	for _, r := range quote.Rates {
		if r.Nightly != 180 {
			t.Fatalf("want nightly 180, got %v on %v", r.Nightly, r.Date)
		}
	}
	if quote.MinStay != nil {
		t.Fatalf("no violation expected, got %+v", quote.MinStay)
	}
}

func TestBuildQuote_MinStayViolationReported(t *testing.T) {
	t.Parallel()

	periods, entries := julyFixture()

	// 1 night against minNights=2: reported, not rejected.
	quote, err := BuildQuote(periods, entries, date(2026, time.July, 10), date(2026, time.July, 11), 2, false)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if quote.MinStay == nil {
		t.Fatalf("expected a minimum-stay violation")
	}
	if quote.MinStay.Required != 2 || quote.MinStay.Requested != 1 {
		t.Fatalf("want required=2 requested=1, got %+v", quote.MinStay)
	}
	if quote.Total != 180 {
		t.Fatalf("violating quote is still priced: want 180, got %v", quote.Total)
	}
}

func TestBuildQuote_Deterministic(t *testing.T) {
	t.Parallel()

	periods, entries := julyFixture()

	first, err := BuildQuote(periods, entries, date(2026, time.July, 10), date(2026, time.July, 13), 2, false)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	second, err := BuildQuote(periods, entries, date(2026, time.July, 10), date(2026, time.July, 13), 2, false)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if first.Total != second.Total || first.Nights != second.Nights {
		t.Fatalf("identical inputs must quote identically: %+v vs %+v", first, second)
	}
}

func TestBuildQuote_ProratesAcrossPeriods(t *testing.T) {
	t.Parallel()

	periods := []models.PricePeriod{
		period(1, "Low", date(2026, time.June, 1), date(2026, time.June, 30), false, 1, date(2026, time.January, 1)),
		period(2, "High", date(2026, time.July, 1), date(2026, time.July, 31), false, 1, date(2026, time.January, 2)),
	}
	entries := []models.PriceEntry{
		entry(1, 2, false, 100),
		entry(2, 2, false, 180),
	}

	// June 29 .. July 2: nights of Jun 29, Jun 30 at 100, Jul 1 at 180.
	quote, err := BuildQuote(periods, entries, date(2026, time.June, 29), date(2026, time.July, 2), 2, false)
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if quote.Total != 380 {
		t.Fatalf("want prorated total 380, got %v", quote.Total)
	}
	if quote.Rates[0].PeriodID != 1 || quote.Rates[2].PeriodID != 2 {
		t.Fatalf("nights must carry their own period: %+v", quote.Rates)
	}
}

func TestBuildQuote_NoRateFailsWholeQuote(t *testing.T) {
	t.Parallel()

	periods := []models.PricePeriod{
		period(1, "Low", date(2026, time.June, 1), date(2026, time.June, 30), false, 1, date(2026, time.January, 1)),
		period(2, "High", date(2026, time.July, 1), date(2026, time.July, 31), false, 1, date(2026, time.January, 2)),
	}
	// Only the Low period has an entry: a stay reaching July must fail.
	entries := []models.PriceEntry{entry(1, 2, false, 100)}

	_, err := BuildQuote(periods, entries, date(2026, time.June, 29), date(2026, time.July, 2), 2, false)
	if !errors.Is(err, ErrNoRate) {
		t.Fatalf("want ErrNoRate, got %v", err)
	}
}

func TestBuildQuote_NoPeriod(t *testing.T) {
	t.Parallel()

	periods, entries := julyFixture()
	_, err := BuildQuote(periods, entries, date(2026, time.August, 1), date(2026, time.August, 3), 2, false)
	if !errors.Is(err, ErrNoPeriod) {
		t.Fatalf("want ErrNoPeriod, got %v", err)
	}
}

func TestBuildQuote_InvalidRange(t *testing.T) {
	t.Parallel()

	periods, entries := julyFixture()
	_, err := BuildQuote(periods, entries, date(2026, time.July, 13), date(2026, time.July, 10), 2, false)
	if !errors.Is(err, ErrInvalidStayRange) {
		t.Fatalf("want ErrInvalidStayRange, got %v", err)
	}
}
