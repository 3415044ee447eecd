// File: services/booking/interface.go
package booking

import (
	"context"

	bookingRepo "medisys/database/repository/booking"
	"medisys/models"
	"medisys/services/availability"
)

// BookingService is the booking-creation workflow consuming the
// availability engine's output.
type BookingService interface {
	// BookSlot books the requested slot after re-checking availability.
	// The check is optimistic: the booking store's uniqueness guarantee
	// is what finally serializes two callers racing for the same slot.
	BookSlot(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	// CancelBooking frees the slot held by the given booking and
	// returns the canceled booking.
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo            bookingRepo.BookingRepository
	AvailabilitySvc availability.Service

	// InitialStatus is assigned to newly created bookings; it must be
	// one of the configured occupying statuses or the booking would not
	// hold its slot.
	InitialStatus string
}
