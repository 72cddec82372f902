package repository

import (
	"fmt"
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultTeamEarningRepository struct {
	DB *gorm.DB
}

func NewDefaultTeamEarningRepository(db *gorm.DB) *DefaultTeamEarningRepository {
	return &DefaultTeamEarningRepository{DB: db}
}

func (r *DefaultTeamEarningRepository) CreateRecords(records []*domain.TeamEarningRecord) error {
	if len(records) == 0 {
		return nil
	}

	recordModels := make([]models.TeamEarningRecordModel, len(records))
	for i, record := range records {
		if record.ID == "" {
			record.ID = uuid.New().String()
		}
		if record.CreatedAt.IsZero() {
			record.CreatedAt = time.Now()
		}
		recordModels[i] = *mappers.ToGORMTeamEarning(record)
	}

	if err := r.DB.Create(&recordModels).Error; err != nil {
		return fmt.Errorf("create team earning records: %w", err)
	}
	return nil
}

func (r *DefaultTeamEarningRepository) GetRecordsByUserID(userID string) ([]*domain.TeamEarningRecord, error) {
	var recordModels []models.TeamEarningRecordModel
	if err := r.DB.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.TeamEarningRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = mappers.ToDomainTeamEarning(&model)
	}
	return records, nil
}
