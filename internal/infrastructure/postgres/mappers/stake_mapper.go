package mappers

import (
	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
)

func ToDomainStakeEntry(model *models.StakeEntryModel) *domain.StakeEntry {
	entryCap := domain.Capped(model.Cap)
	if model.Cap == 0 {
		entryCap = domain.Uncapped()
	}
	return &domain.StakeEntry{
		ID:           model.ID,
		UserID:       model.UserID,
		Principal:    model.Principal,
		DailyRate:    model.DailyRate,
		Cap:          entryCap,
		Earned:       model.Earned,
		Status:       model.Status,
		PackageLabel: model.PackageLabel,
		Currency:     model.Currency,
		CreatedAt:    model.CreatedAt,
		EndsAt:       model.EndsAt,
		CompletedAt:  model.CompletedAt,
	}
}

func ToGORMStakeEntry(entry *domain.StakeEntry) *models.StakeEntryModel {
	limit := entry.Cap.Limit
	if entry.Cap.Uncapped {
		limit = 0
	}
	return &models.StakeEntryModel{
		ID:           entry.ID,
		UserID:       entry.UserID,
		Principal:    entry.Principal,
		DailyRate:    entry.DailyRate,
		Cap:          limit,
		Earned:       entry.Earned,
		Status:       entry.Status,
		PackageLabel: entry.PackageLabel,
		Currency:     entry.Currency,
		CreatedAt:    entry.CreatedAt,
		EndsAt:       entry.EndsAt,
		CompletedAt:  entry.CompletedAt,
	}
}
