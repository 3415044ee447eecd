// File: services/availability/resolver.go
package availability

import (
	"fmt"
	"time"

	"medisys/models"
)

// ResolveAvailability annotates candidate slots with their true
// availability by reconciling the booking and exception snapshots, and
// removes slots whose timestamp is not strictly after now — past time is
// not actionable, not even as "unavailable".
//
// Exceptions take precedence over bookings: bookings are only consulted
// once the day is confirmed working. Nil snapshots mean no constraints
// from that source; a collaborator outage degrades accuracy, it never
// fails slot listing.
//
// Side-effect free and idempotent: the same inputs always produce the
// same annotated list.
func ResolveAvailability(
	slots []models.Slot,
	bookings []models.Booking,
	exceptions []models.Exception,
	occupying models.StatusSet,
	now time.Time,
) []models.Slot {
	wholeDay := make(map[string]models.ExceptionType)
	partial := make(map[string][]models.Exception)
	for _, e := range exceptions {
		if e.WholeDay() {
			// First whole-day exception wins for the date.
			if _, ok := wholeDay[e.Date]; !ok {
				wholeDay[e.Date] = e.Type
			}
			continue
		}
		partial[e.Date] = append(partial[e.Date], e)
	}

	booked := make(map[string]struct{})
	for _, b := range bookings {
		if occupying.Contains(b.Status) {
			booked[slotKey(b.Date, b.Start)] = struct{}{}
		}
	}

	resolved := make([]models.Slot, 0, len(slots))
	for _, s := range slots {
		if !s.StartAt.After(now) {
			continue
		}

		if t, ok := wholeDay[s.Date]; ok {
			s.Available = false
			s.Reason = string(t)
		} else if e, ok := partialCovering(partial[s.Date], s.Start); ok {
			s.Available = false
			s.Reason = string(e.Type)
		} else if _, ok := booked[slotKey(s.Date, s.Start)]; ok {
			s.Available = false
			s.Reason = models.ReasonBooked
		} else {
			s.Available = true
			s.Reason = ""
		}
		resolved = append(resolved, s)
	}
	return resolved
}

func partialCovering(exceptions []models.Exception, start int) (models.Exception, bool) {
	for _, e := range exceptions {
		if e.Covers(start) {
			return e, true
		}
	}
	return models.Exception{}, false
}

func slotKey(date string, start int) string {
	return fmt.Sprintf("%s|%d", date, start)
}
