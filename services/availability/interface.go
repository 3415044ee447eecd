// File: services/availability/interface.go
package availability

import (
	"context"
	"time"

	bookingRepo "medisys/database/repository/booking"
	exceptionRepo "medisys/database/repository/exception"
	scheduleRepo "medisys/database/repository/schedule"
	"medisys/models"
)

// Service computes the bookable week view for a doctor at a branch.
type Service interface {
	// GetWeekAvailability returns the annotated slot list for the week
	// containing ref, shifted by weekOffset whole weeks. A week with no
	// slots is a normal empty result, not an error.
	GetWeekAvailability(ctx context.Context, doctorID, branchID string, ref time.Time, weekOffset int) (*models.WeekAvailability, error)
}

// DefaultAvailabilityService implements Service on top of the three
// collaborator stores. Each request reads one immutable snapshot per
// store; snapshots are never re-queried mid-computation.
type DefaultAvailabilityService struct {
	ScheduleRepo  scheduleRepo.ScheduleRepository
	BookingRepo   bookingRepo.BookingRepository
	ExceptionRepo exceptionRepo.ExceptionRepository

	// Occupying is the configurable set of booking statuses that block
	// a slot.
	Occupying models.StatusSet

	// Clock overrides the time source in tests; nil means time.Now.
	Clock func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
