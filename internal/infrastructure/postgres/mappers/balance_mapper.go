package mappers

import (
	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
)

func ToDomainBalance(model *models.UserBalanceModel) *domain.UserBalance {
	return &domain.UserBalance{
		UserID:            model.UserID,
		Available:         model.Available,
		Staked:            model.Staked,
		TeamEarningsTotal: model.TeamEarningsTotal,
		MissedTotal:       model.MissedTotal,
		LastPayout:        model.LastPayout,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMBalance(balance *domain.UserBalance) *models.UserBalanceModel {
	return &models.UserBalanceModel{
		UserID:            balance.UserID,
		Available:         balance.Available,
		Staked:            balance.Staked,
		TeamEarningsTotal: balance.TeamEarningsTotal,
		MissedTotal:       balance.MissedTotal,
		LastPayout:        balance.LastPayout,
		CreatedAt:         balance.CreatedAt,
		UpdatedAt:         balance.UpdatedAt,
	}
}
