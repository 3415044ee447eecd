package availability

import (
	"testing"
	"time"
)

// 2026-02-02 is a Monday.
var monday = time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

func TestWeekOfNormalizesToMonday(t *testing.T) {
	for offset := 0; offset < 7; offset++ {
		ref := monday.AddDate(0, 0, offset).Add(15 * time.Hour)
		w := WeekOf(ref)
		if !w.Start.Equal(monday) {
			t.Fatalf("day offset %d: expected week start %s, got %s", offset, monday, w.Start)
		}
		if !w.End.Equal(monday.AddDate(0, 0, 6)) {
			t.Fatalf("day offset %d: expected week end Sunday, got %s", offset, w.End)
		}
	}
}

func TestWeekOfSundayBelongsToPrecedingMonday(t *testing.T) {
	sunday := time.Date(2026, 2, 8, 23, 30, 0, 0, time.UTC)
	w := WeekOf(sunday)
	if !w.Start.Equal(monday) {
		t.Fatalf("expected Sunday to map to week of %s, got %s", monday, w.Start)
	}
}

func TestShiftRoundTrip(t *testing.T) {
	refs := []time.Time{
		monday,
		monday.AddDate(0, 0, 3),
		time.Date(2026, 12, 31, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), // leap day
	}
	for _, ref := range refs {
		orig := WeekOf(ref)
		for _, n := range []int{1, 4, 52} {
			back := orig.Shift(n).Shift(-n)
			if !back.Start.Equal(orig.Start) || !back.End.Equal(orig.End) {
				t.Fatalf("ref %s: shift +%d/-%d did not round-trip: got [%s, %s]",
					ref, n, n, back.Start, back.End)
			}
		}
	}
}

func TestShiftMovesWholeWeeks(t *testing.T) {
	w := WeekOf(monday).Shift(1)
	if !w.Start.Equal(monday.AddDate(0, 0, 7)) {
		t.Fatalf("expected next Monday, got %s", w.Start)
	}
	w = WeekOf(monday).Shift(-2)
	if !w.Start.Equal(monday.AddDate(0, 0, -14)) {
		t.Fatalf("expected Monday two weeks back, got %s", w.Start)
	}
}

func TestContains(t *testing.T) {
	w := WeekOf(monday)
	if !w.Contains(monday.AddDate(0, 0, 6)) {
		t.Fatal("expected Sunday inside the window")
	}
	if w.Contains(monday.AddDate(0, 0, 7)) {
		t.Fatal("expected next Monday outside the window")
	}
	if w.Contains(monday.AddDate(0, 0, -1)) {
		t.Fatal("expected preceding Sunday outside the window")
	}
}
