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

type DefaultYieldLedgerRepository struct {
	DB *gorm.DB
}

func NewDefaultYieldLedgerRepository(db *gorm.DB) *DefaultYieldLedgerRepository {
	return &DefaultYieldLedgerRepository{DB: db}
}

func (r *DefaultYieldLedgerRepository) UpsertRecord(record *domain.DailyYieldRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	model := models.DailyYieldRecordModel{
		ID:        record.ID,
		RunDate:   domain.RunDay(record.RunDate),
		UserID:    record.UserID,
		Amount:    record.Amount,
		CreatedAt: time.Now(),
	}

	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "run_date"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "created_at"}),
	}).Create(&model).Error
	if err != nil {
		return fmt.Errorf("upsert daily yield record: %w", err)
	}
	return nil
}

func (r *DefaultYieldLedgerRepository) GetByRunDate(runDate time.Time) ([]*domain.DailyYieldRecord, error) {
	var recordModels []models.DailyYieldRecordModel
	if err := r.DB.
		Where("run_date = ? AND amount > 0", domain.RunDay(runDate)).
		Order("user_id ASC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.DailyYieldRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = mappers.ToDomainYieldRecord(&model)
	}
	return records, nil
}
