// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"medisys/config"
	"medisys/database"
	"medisys/models"
	"medisys/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ScheduleRepository is the read/write contract for recurring work blocks.
// The availability engine only uses GetActiveWorkBlocks; the rest serves
// schedule management.
type ScheduleRepository interface {
	GetActiveWorkBlocks(ctx context.Context, doctorID, branchID string) ([]models.WorkBlock, error)
	Create(ctx context.Context, block *models.WorkBlock) error
	GetByDoctor(ctx context.Context, doctorID string) ([]models.WorkBlock, error)
	SetActive(ctx context.Context, blockID string, active bool) error
	DeleteByID(ctx context.Context, blockID string) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoScheduleRepo{
		coll: db.Collection("workblocks"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure workblock indexes", zap.Error(err))
	}
	return repo
}
