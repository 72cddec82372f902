package repository

import (
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultStakeRepository struct {
	DB *gorm.DB
}

func NewDefaultStakeRepository(db *gorm.DB) *DefaultStakeRepository {
	return &DefaultStakeRepository{DB: db}
}

func (r *DefaultStakeRepository) CreateEntry(entry *domain.StakeEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	model := mappers.ToGORMStakeEntry(entry)
	if err := r.DB.Create(model).Error; err != nil {
		return fmt.Errorf("create stake entry: %w", err)
	}
	return nil
}

func (r *DefaultStakeRepository) GetActiveEntries() ([]*domain.StakeEntry, error) {
	return r.findEntries(r.DB.Where("status = ?", domain.StakeStatusActive))
}

func (r *DefaultStakeRepository) GetActiveEntriesByUserID(userID string) ([]*domain.StakeEntry, error) {
	return r.findEntries(r.DB.Where("status = ? AND user_id = ?", domain.StakeStatusActive, userID))
}

func (r *DefaultStakeRepository) findEntries(query *gorm.DB) ([]*domain.StakeEntry, error) {
	var entryModels []models.StakeEntryModel
	if err := query.Order("created_at ASC").Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]*domain.StakeEntry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = mappers.ToDomainStakeEntry(&model)
	}
	return entries, nil
}

func (r *DefaultStakeRepository) GetEntryByID(entryID string) (*domain.StakeEntry, error) {
	var model models.StakeEntryModel
	if err := r.DB.First(&model, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}
	return mappers.ToDomainStakeEntry(&model), nil
}

func (r *DefaultStakeRepository) UpdateEntry(entry *domain.StakeEntry) error {
	model := mappers.ToGORMStakeEntry(entry)
	if err := r.DB.Save(model).Error; err != nil {
		return fmt.Errorf("update stake entry %s: %w", entry.ID, err)
	}
	return nil
}
