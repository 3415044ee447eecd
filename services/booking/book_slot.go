// File: services/booking/book_slot.go
package booking

import (
	"context"
	"fmt"
	"time"

	"medisys/models"
	"medisys/utils"

	"go.uber.org/zap"
)

// BookSlot re-validates the requested slot against a fresh availability
// view, then inserts the booking. A slot that was available when the
// patient saw the week grid may have been taken meanwhile; both the
// re-check and the store's uniqueness index guard against that.
func (s *DefaultBookingService) BookSlot(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	date, err := time.Parse(utils.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	start, err := utils.ClockToMinutes(req.Time)
	if err != nil {
		return nil, err
	}

	// Step 1: availability re-check for the slot's week.
	week, err := s.AvailabilitySvc.GetWeekAvailability(ctx, req.DoctorID, req.BranchID, date, 0)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}

	slot, ok := findSlot(week.Slots, req.Date, start)
	if !ok {
		return nil, fmt.Errorf("no bookable slot at %s %s for this doctor", req.Date, req.Time)
	}
	if !slot.Available {
		return nil, fmt.Errorf("slot at %s %s is no longer available: %s", req.Date, req.Time, slot.Reason)
	}

	// Step 2: insert. The booking store serializes per doctor+timestamp;
	// losing the race surfaces as ErrSlotTaken from the repository.
	bk := &models.Booking{
		DoctorID:  req.DoctorID,
		BranchID:  req.BranchID,
		PatientID: req.PatientID,
		Date:      req.Date,
		Start:     start,
		Status:    s.InitialStatus,
	}
	if err := s.Repo.Create(ctx, bk); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingId", bk.ID),
		zap.String("doctorId", bk.DoctorID),
		zap.String("date", bk.Date),
		zap.String("time", req.Time))
	return bk, nil
}

// CancelBooking frees the held slot; the next availability computation
// will offer it again.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("booking id is required")
	}
	bk, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking %s not found: %w", bookingID, err)
	}
	if err := s.Repo.Cancel(ctx, bookingID); err != nil {
		return nil, err
	}
	bk.Status = "canceled"
	bk.Occupying = false
	return bk, nil
}

func findSlot(slots []models.Slot, date string, start int) (models.Slot, bool) {
	for _, s := range slots {
		if s.Date == date && s.Start == start {
			return s, true
		}
	}
	return models.Slot{}, false
}
