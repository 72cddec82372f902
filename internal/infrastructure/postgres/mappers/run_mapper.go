package mappers

import (
	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
)

func ToDomainRun(model *models.DistributionRunModel) *domain.DistributionRun {
	return &domain.DistributionRun{
		ID:            model.ID,
		Token:         model.Token,
		Stage:         model.Stage,
		RunDate:       model.RunDate,
		TotalUsers:    model.TotalUsers,
		TotalRewarded: model.TotalRewarded,
		TotalMissed:   model.TotalMissed,
		StartedAt:     model.StartedAt,
		FinishedAt:    model.FinishedAt,
	}
}

func ToGORMRun(run *domain.DistributionRun) *models.DistributionRunModel {
	return &models.DistributionRunModel{
		ID:            run.ID,
		Token:         run.Token,
		Stage:         run.Stage,
		RunDate:       run.RunDate,
		TotalUsers:    run.TotalUsers,
		TotalRewarded: run.TotalRewarded,
		TotalMissed:   run.TotalMissed,
		StartedAt:     run.StartedAt,
		FinishedAt:    run.FinishedAt,
	}
}

func ToDomainYieldRecord(model *models.DailyYieldRecordModel) *domain.DailyYieldRecord {
	return &domain.DailyYieldRecord{
		ID:        model.ID,
		RunDate:   model.RunDate,
		UserID:    model.UserID,
		Amount:    model.Amount,
		CreatedAt: model.CreatedAt,
	}
}
