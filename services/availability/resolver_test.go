package availability

import (
	"reflect"
	"testing"
	"time"

	"medisys/models"
)

var occupying = models.ParseStatusSet("pending,confirmed")

// beforeWeek is a "now" that predates the test week entirely, so no
// slot is dropped for being in the past.
var beforeWeek = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func candidateMondaySlots() []models.Slot {
	return BuildCandidateSlots(WeekOf(monday), []models.WorkBlock{mondayBlock(480, 600, 30)})
}

func TestResolveAvailability_BookedSlot(t *testing.T) {
	bookings := []models.Booking{
		{DoctorID: "dr-1", Date: "2026-02-02", Start: 540, Status: "confirmed"},
	}
	slots := ResolveAvailability(candidateMondaySlots(), bookings, nil, occupying, beforeWeek)

	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Start == 540 {
			if s.Available {
				t.Fatal("expected 09:00 slot to be unavailable")
			}
			if s.Reason != models.ReasonBooked {
				t.Fatalf("expected reason %q, got %q", models.ReasonBooked, s.Reason)
			}
		} else if !s.Available {
			t.Fatalf("expected slot at %d to stay available, reason=%q", s.Start, s.Reason)
		}
	}
}

func TestResolveAvailability_CanceledBookingFreesSlot(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2026-02-02", Start: 540, Status: "canceled"},
		{Date: "2026-02-02", Start: 570, Status: "no-show"},
	}
	slots := ResolveAvailability(candidateMondaySlots(), bookings, nil, occupying, beforeWeek)
	for _, s := range slots {
		if !s.Available {
			t.Fatalf("non-occupying statuses must not block; slot %d unavailable (%s)", s.Start, s.Reason)
		}
	}
}

func TestResolveAvailability_WholeDayException(t *testing.T) {
	exceptions := []models.Exception{
		{Date: "2026-02-02", Type: models.ExceptionHoliday},
	}
	slots := ResolveAvailability(candidateMondaySlots(), nil, exceptions, occupying, beforeWeek)

	if len(slots) != 4 {
		t.Fatalf("expected 4 annotated slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Available {
			t.Fatalf("expected all slots blocked by holiday, %d is available", s.Start)
		}
		if s.Reason != "holiday" {
			t.Fatalf("expected reason %q, got %q", "holiday", s.Reason)
		}
	}
}

func TestResolveAvailability_ExceptionBeatsBooking(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2026-02-02", Start: 540, Status: "confirmed"},
	}
	exceptions := []models.Exception{
		{Date: "2026-02-02", Type: models.ExceptionVacation},
	}
	slots := ResolveAvailability(candidateMondaySlots(), bookings, exceptions, occupying, beforeWeek)
	for _, s := range slots {
		if s.Reason != "vacation" {
			t.Fatalf("exception must take precedence over booking; slot %d has reason %q", s.Start, s.Reason)
		}
	}
}

func TestResolveAvailability_PartialException(t *testing.T) {
	start, end := 540, 600 // 09:00-10:00
	exceptions := []models.Exception{
		{Date: "2026-02-02", Type: models.ExceptionPartialBlock, Start: &start, End: &end},
	}
	slots := ResolveAvailability(candidateMondaySlots(), nil, exceptions, occupying, beforeWeek)

	for _, s := range slots {
		blocked := s.Start >= start && s.Start < end
		if blocked && s.Available {
			t.Fatalf("expected slot %d blocked by partial exception", s.Start)
		}
		if blocked && s.Reason != "partial_block" {
			t.Fatalf("expected reason partial_block on slot %d, got %q", s.Start, s.Reason)
		}
		if !blocked && !s.Available {
			t.Fatalf("slot %d outside the partial range must stay available", s.Start)
		}
	}
}

func TestResolveAvailability_ExcludesPastSlots(t *testing.T) {
	// Now is Monday 08:45: 08:00 and 08:30 are gone entirely.
	now := monday.Add(8*time.Hour + 45*time.Minute)
	slots := ResolveAvailability(candidateMondaySlots(), nil, nil, occupying, now)

	if len(slots) != 2 {
		t.Fatalf("expected 2 future slots, got %d", len(slots))
	}
	if slots[0].Start != 540 || slots[1].Start != 570 {
		t.Fatalf("expected 09:00 and 09:30 to remain, got %d and %d", slots[0].Start, slots[1].Start)
	}
}

func TestResolveAvailability_SlotStartingNowIsExcluded(t *testing.T) {
	// Strictly after now: a slot starting exactly at now is not offered.
	now := monday.Add(8 * time.Hour)
	slots := ResolveAvailability(candidateMondaySlots(), nil, nil, occupying, now)
	for _, s := range slots {
		if !s.StartAt.After(now) {
			t.Fatalf("slot at %d not strictly in the future", s.Start)
		}
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
}

func TestResolveAvailability_NilSnapshots(t *testing.T) {
	slots := ResolveAvailability(candidateMondaySlots(), nil, nil, occupying, beforeWeek)
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if !s.Available {
			t.Fatalf("nil snapshots mean no constraints; slot %d unavailable", s.Start)
		}
	}
}

func TestResolveAvailability_Idempotent(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2026-02-02", Start: 480, Status: "pending"},
	}
	start, end := 540, 570
	exceptions := []models.Exception{
		{Date: "2026-02-02", Type: models.ExceptionPartialBlock, Start: &start, End: &end},
	}

	first := ResolveAvailability(candidateMondaySlots(), bookings, exceptions, occupying, beforeWeek)
	second := ResolveAvailability(candidateMondaySlots(), bookings, exceptions, occupying, beforeWeek)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical snapshots must resolve identically")
	}
	// Resolving an already-resolved list changes nothing either.
	third := ResolveAvailability(first, bookings, exceptions, occupying, beforeWeek)
	if !reflect.DeepEqual(first, third) {
		t.Fatal("resolution must be idempotent")
	}
}
