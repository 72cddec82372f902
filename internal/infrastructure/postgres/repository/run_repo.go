package repository

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultRunRepository struct {
	DB *gorm.DB
}

func NewDefaultRunRepository(db *gorm.DB) *DefaultRunRepository {
	return &DefaultRunRepository{DB: db}
}

func (r *DefaultRunRepository) CreateRun(run *domain.DistributionRun) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	run.RunDate = domain.RunDay(run.RunDate)
	model := mappers.ToGORMRun(run)

	// DoNothing + RowsAffected instead of error translation: behaves the same
	// on postgres and the sqlite test store.
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stage"}, {Name: "run_date"}},
		DoNothing: true,
	}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("create distribution run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRunAlreadyCompleted
	}
	return nil
}

func (r *DefaultRunRepository) DeleteRun(run *domain.DistributionRun) error {
	err := r.DB.Delete(&models.DistributionRunModel{}, "id = ?", run.ID).Error
	if err != nil {
		return fmt.Errorf("delete distribution run %s: %w", run.ID, err)
	}
	return nil
}

func (r *DefaultRunRepository) FinishRun(run *domain.DistributionRun) error {
	now := time.Now()
	run.FinishedAt = &now

	err := r.DB.Model(mappers.ToGORMRun(run)).
		Updates(map[string]interface{}{
			"total_users":    run.TotalUsers,
			"total_rewarded": run.TotalRewarded,
			"total_missed":   run.TotalMissed,
			"finished_at":    run.FinishedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("finish distribution run %s: %w", run.ID, err)
	}
	return nil
}
