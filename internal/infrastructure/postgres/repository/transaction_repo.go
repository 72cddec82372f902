package repository

import (
	"fmt"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateRecord(record *domain.TransactionRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	model := models.TransactionRecordModel{
		ID:        record.ID,
		UserID:    record.UserID,
		Type:      record.Type,
		Amount:    record.Amount,
		Currency:  record.Currency,
		EntryID:   record.EntryID,
		CreatedAt: record.CreatedAt,
	}
	if err := r.DB.Create(&model).Error; err != nil {
		return fmt.Errorf("create transaction record: %w", err)
	}
	return nil
}
