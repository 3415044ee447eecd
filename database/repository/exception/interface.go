// File: database/repository/exception/interface.go
package exceptionRepo

import (
	"context"

	"medisys/config"
	"medisys/database"
	"medisys/models"
	"medisys/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ExceptionRepository is the contract for date-scoped schedule overrides
// (holidays, vacation, partial blocks). The availability engine only
// reads; management endpoints write.
type ExceptionRepository interface {
	GetExceptions(ctx context.Context, doctorID, weekStart, weekEnd string) ([]models.Exception, error)
	Create(ctx context.Context, exception *models.Exception) error
	GetByDoctor(ctx context.Context, doctorID string) ([]models.Exception, error)
	DeleteByID(ctx context.Context, exceptionID string) error
}

type mongoExceptionRepo struct {
	coll *mongo.Collection
}

// NewMongoExceptionRepo constructs a new MongoDB ExceptionRepository.
func NewMongoExceptionRepo() ExceptionRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoExceptionRepo{
		coll: db.Collection("exceptions"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure exception indexes", zap.Error(err))
	}
	return repo
}
