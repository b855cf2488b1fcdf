package models

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBlocksDate(t *testing.T) {
	t.Parallel()

	start := day(2026, time.July, 10)
	end := day(2026, time.July, 12)
	a := Accommodation{Blocked: true, BlockStart: &start, BlockEnd: &end}

	if !a.BlocksDate(day(2026, time.July, 10)) || !a.BlocksDate(day(2026, time.July, 12)) {
		t.Fatalf("block range is inclusive on both ends")
	}
	if a.BlocksDate(day(2026, time.July, 9)) || a.BlocksDate(day(2026, time.July, 13)) {
		t.Fatalf("dates outside the range must not be blocked")
	}

	a.Blocked = false
	if a.BlocksDate(day(2026, time.July, 11)) {
		t.Fatalf("unblocked accommodation never blocks")
	}
}

func TestBlocksDate_OpenEnded(t *testing.T) {
	t.Parallel()

	a := Accommodation{Blocked: true}
	if !a.BlocksDate(day(2027, time.January, 1)) {
		t.Fatalf("block without range covers every date")
	}

	start := day(2026, time.July, 10)
	a.BlockStart = &start
	if a.BlocksDate(day(2026, time.July, 9)) {
		t.Fatalf("date before open-ended start must not be blocked")
	}
	if !a.BlocksDate(day(2026, time.December, 1)) {
		t.Fatalf("open-ended block must cover everything after start")
	}
}

func TestBlocksRange(t *testing.T) {
	t.Parallel()

	start := day(2026, time.July, 10)
	end := day(2026, time.July, 12)
	a := Accommodation{Blocked: true, BlockStart: &start, BlockEnd: &end}

	if !a.BlocksRange(day(2026, time.July, 11), day(2026, time.July, 14)) {
		t.Fatalf("stay touching the block must be blocked")
	}
	if a.BlocksRange(day(2026, time.July, 13), day(2026, time.July, 15)) {
		t.Fatalf("stay after the block must pass")
	}
	// Stay ending the day the block starts: night of Jul 9 only, passes.
	if a.BlocksRange(day(2026, time.July, 9), day(2026, time.July, 10)) {
		t.Fatalf("stay occupying only the night before the block must pass")
	}
}
