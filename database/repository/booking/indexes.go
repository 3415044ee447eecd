// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: occupying bookings per doctor, branch and date range.
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "branchId", Value: 1}, {Key: "date", Value: 1}, {Key: "occupying", Value: 1}},
			Options: options.Index().SetName("doctor_branch_date_idx"),
		},
		// At most one occupying booking per doctor and slot timestamp.
		// Two concurrent callers racing for the same slot resolve here:
		// the loser gets a duplicate-key error, surfaced as ErrSlotTaken.
		{
			Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_occupied_slot").
				SetPartialFilterExpression(bson.D{{Key: "occupying", Value: true}}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
