// File: services/availability/generator.go
package availability

import (
	"sort"
	"time"

	"medisys/models"
	"medisys/utils"

	"go.uber.org/zap"
)

// BuildCandidateSlots expands recurring work blocks into the raw slot
// grid for one Monday-aligned week. Every emitted slot starts available;
// bookings, exceptions and the clock are applied by ResolveAvailability.
//
// A block whose range is shorter than one duration unit past the last
// full slot never emits the remainder: a 08:00-10:00 block with 30-minute
// slots yields exactly 08:00, 08:30, 09:00 and 09:30.
//
// Pure with respect to its inputs; identical inputs yield an identical
// ordered list. Malformed blocks are skipped with a warning so bad
// schedule rows cannot take down the rest of the week.
func BuildCandidateSlots(week WeekWindow, blocks []models.WorkBlock) []models.Slot {
	logger := utils.GetLogger()

	var slots []models.Slot
	for i := 0; i < 7; i++ {
		day := week.Day(i)
		weekday := models.ISOWeekday(day)
		dateStr := day.Format(utils.DateLayout)

		for _, b := range blocks {
			if !b.Active || b.Weekday != weekday {
				continue
			}
			if !b.Valid() {
				logger.Warn("skipping malformed work block",
					zap.String("blockId", b.ID),
					zap.String("doctorId", b.DoctorID),
					zap.Int("start", b.Start),
					zap.Int("end", b.End),
					zap.Int("slotDuration", b.SlotDuration))
				continue
			}

			for start := b.Start; start+b.SlotDuration <= b.End; start += b.SlotDuration {
				slots = append(slots, models.Slot{
					Date:      dateStr,
					Start:     start,
					Time:      utils.MinutesToClock(start),
					StartAt:   day.Add(time.Duration(start) * time.Minute),
					Weekday:   weekday,
					Duration:  b.SlotDuration,
					Available: true,
				})
			}
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date == slots[j].Date {
			return slots[i].Start < slots[j].Start
		}
		return slots[i].Date < slots[j].Date
	})

	return slots
}
