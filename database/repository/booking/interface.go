// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"medisys/config"
	"medisys/database"
	"medisys/models"
	"medisys/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrSlotTaken is returned when another occupying booking already holds
// the same doctor+date+start. It is how a lost booking race surfaces.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository is the contract for the booking store. Create relies
// on a partial unique index over occupying bookings, which gives the
// per doctor+timestamp serialization the availability engine itself
// does not guarantee.
type BookingRepository interface {
	GetOccupyingBookings(ctx context.Context, doctorID, branchID, weekStart, weekEnd string) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
}

type mongoBookingRepo struct {
	coll      *mongo.Collection
	occupying models.StatusSet
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoBookingRepo{
		coll:      db.Collection("bookings"),
		occupying: models.ParseStatusSet(config.AppConfig.BookingOccupyingStatuses),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure booking indexes", zap.Error(err))
	}
	return repo
}
