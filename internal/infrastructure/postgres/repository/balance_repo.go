package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultBalanceRepository struct {
	DB *gorm.DB
}

func NewDefaultBalanceRepository(db *gorm.DB) *DefaultBalanceRepository {
	return &DefaultBalanceRepository{DB: db}
}

func (r *DefaultBalanceRepository) GetByUserID(userID string) (*domain.UserBalance, error) {
	var model models.UserBalanceModel
	if err := r.DB.First(&model, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, domain.ErrBalanceNotFound)
		}
		return nil, err
	}
	return mappers.ToDomainBalance(&model), nil
}

func (r *DefaultBalanceRepository) CreateBalance(balance *domain.UserBalance) error {
	model := mappers.ToGORMBalance(balance)
	return r.DB.Create(model).Error
}

func (r *DefaultBalanceRepository) UpdateBalance(balance *domain.UserBalance) error {
	model := mappers.ToGORMBalance(balance)
	model.UpdatedAt = time.Now()
	if err := r.DB.Save(model).Error; err != nil {
		return fmt.Errorf("update balance for user %s: %w", balance.UserID, err)
	}
	return nil
}
