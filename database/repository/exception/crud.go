// File: database/repository/exception/crud.go
package exceptionRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"medisys/models"
)

func (r *mongoExceptionRepo) GetExceptions(ctx context.Context, doctorID, weekStart, weekEnd string) ([]models.Exception, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"date":     bson.M{"$gte": weekStart, "$lte": weekEnd},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exceptions []models.Exception
	if err := cursor.All(ctx, &exceptions); err != nil {
		return nil, err
	}
	return exceptions, nil
}

func (r *mongoExceptionRepo) Create(ctx context.Context, exception *models.Exception) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if exception.ID == "" {
		exception.ID = uuid.New().String()
	}
	exception.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, exception)
	return err
}

func (r *mongoExceptionRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Exception, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exceptions []models.Exception
	if err := cursor.All(ctx, &exceptions); err != nil {
		return nil, err
	}
	return exceptions, nil
}

func (r *mongoExceptionRepo) DeleteByID(ctx context.Context, exceptionID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": exceptionID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
