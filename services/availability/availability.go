// File: services/availability/availability.go
package availability

import (
	"context"
	"fmt"
	"time"

	"medisys/models"
	"medisys/utils"

	"go.uber.org/zap"
)

// GetWeekAvailability validates the request, fetches one snapshot from
// each collaborator store, and runs the slot generator and the
// availability resolver over them.
func (s *DefaultAvailabilityService) GetWeekAvailability(
	ctx context.Context,
	doctorID, branchID string,
	ref time.Time,
	weekOffset int,
) (*models.WeekAvailability, error) {
	logger := utils.GetLogger()

	// Parameter validation is the only condition that aborts the whole
	// request.
	if doctorID == "" {
		return nil, fmt.Errorf("doctor id is required")
	}
	if branchID == "" {
		return nil, fmt.Errorf("branch id is required")
	}

	week := WeekOf(ref).Shift(weekOffset)
	weekStart := week.Start.Format(utils.DateLayout)
	weekEnd := week.End.Format(utils.DateLayout)

	blocks, err := s.ScheduleRepo.GetActiveWorkBlocks(ctx, doctorID, branchID)
	if err != nil {
		return nil, fmt.Errorf("fetch work blocks: %w", err)
	}

	// Booking or exception store outages degrade accuracy but must not
	// fail the listing; a missing snapshot is an empty set.
	bookings, err := s.BookingRepo.GetOccupyingBookings(ctx, doctorID, branchID, weekStart, weekEnd)
	if err != nil {
		logger.Warn("booking snapshot unavailable, treating as empty",
			zap.String("doctorId", doctorID),
			zap.String("weekStart", weekStart),
			zap.Error(err))
		bookings = nil
	}

	exceptions, err := s.ExceptionRepo.GetExceptions(ctx, doctorID, weekStart, weekEnd)
	if err != nil {
		logger.Warn("exception snapshot unavailable, treating as empty",
			zap.String("doctorId", doctorID),
			zap.String("weekStart", weekStart),
			zap.Error(err))
		exceptions = nil
	}

	candidates := BuildCandidateSlots(week, blocks)
	slots := ResolveAvailability(candidates, bookings, exceptions, s.Occupying, s.now())

	return &models.WeekAvailability{
		DoctorID:  doctorID,
		BranchID:  branchID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Slots:     slots,
	}, nil
}
