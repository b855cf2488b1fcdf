package services

import (
	"testing"

	"pousada-backend/models"
)

func acc(id uint, capacity int) models.Accommodation {
	return models.Accommodation{ID: id, Category: models.CategoryLuxo, Capacity: capacity}
}

func TestBuildCategoryEntries_OnePerPeopleBreakfastPair(t *testing.T) {
	t.Parallel()

	accommodations := []models.Accommodation{acc(1, 4)}
	options := []PriceOption{
		{People: 2, WithBreakfast: 200, WithoutBreakfast: 180},
		{People: 4, WithBreakfast: 300, WithoutBreakfast: 270},
	}

	entries, skipped := BuildCategoryEntries(accommodations, 9, options, nil)
	if skipped != 0 {
		t.Fatalf("nothing to skip, got %d", skipped)
	}
	if len(entries) != 4 {
		t.Fatalf("want 4 entries (2 options x 2 breakfast flags), got %d", len(entries))
	}

	seen := map[[2]interface{}]float64{}
	for _, e := range entries {
		if e.AccommodationID != 1 || e.PricePeriodID != 9 {
			t.Fatalf("entry has wrong keys: %+v", e)
		}
		key := [2]interface{}{e.People, e.Breakfast}
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate entry for %v", key)
		}
		seen[key] = e.NightlyPrice
	}
	if seen[[2]interface{}{2, false}] != 180 || seen[[2]interface{}{4, true}] != 300 {
		t.Fatalf("prices mapped wrong: %v", seen)
	}
}

func TestBuildCategoryEntries_CapacityFilter(t *testing.T) {
	t.Parallel()

	// Capacity 2: the 4-person option must be skipped.
	accommodations := []models.Accommodation{acc(1, 2)}
	options := []PriceOption{
		{People: 2, WithBreakfast: 200, WithoutBreakfast: 180},
		{People: 4, WithBreakfast: 300, WithoutBreakfast: 270},
	}

	entries, skipped := BuildCategoryEntries(accommodations, 9, options, nil)
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	if skipped != 2 {
		t.Fatalf("want 2 skipped (over-capacity option, both flags), got %d", skipped)
	}
	for _, e := range entries {
		if e.People != 2 {
			t.Fatalf("over-capacity entry leaked: %+v", e)
		}
	}
}

func TestBuildCategoryEntries_ExclusionList(t *testing.T) {
	t.Parallel()

	accommodations := []models.Accommodation{acc(1, 4), acc(2, 4), acc(3, 4)}
	options := []PriceOption{{People: 2, WithBreakfast: 200, WithoutBreakfast: 180}}

	entries, _ := BuildCategoryEntries(accommodations, 9, options, []uint{2})
	if len(entries) != 4 {
		t.Fatalf("want 4 entries (2 accommodations x 2 flags), got %d", len(entries))
	}
	for _, e := range entries {
		if e.AccommodationID == 2 {
			t.Fatalf("excluded accommodation got an entry: %+v", e)
		}
	}
}

func TestBuildCategoryEntries_InvalidPeopleSkipped(t *testing.T) {
	t.Parallel()

	accommodations := []models.Accommodation{acc(1, 4)}
	options := []PriceOption{{People: 0, WithBreakfast: 1, WithoutBreakfast: 1}}

	entries, skipped := BuildCategoryEntries(accommodations, 9, options, nil)
	if len(entries) != 0 || skipped != 2 {
		t.Fatalf("zero-people option must be skipped, got %d entries %d skipped", len(entries), skipped)
	}
}
