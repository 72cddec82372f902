package mappers

import (
	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
)

func ToDomainRelationship(model *models.SponsorRelationshipModel) *domain.SponsorRelationship {
	return &domain.SponsorRelationship{
		ID:        model.ID,
		UserID:    model.UserID,
		SponsorID: model.SponsorID,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMRelationship(relationship *domain.SponsorRelationship) *models.SponsorRelationshipModel {
	return &models.SponsorRelationshipModel{
		ID:        relationship.ID,
		UserID:    relationship.UserID,
		SponsorID: relationship.SponsorID,
		CreatedAt: relationship.CreatedAt,
	}
}

func ToDomainTeamEarning(model *models.TeamEarningRecordModel) *domain.TeamEarningRecord {
	return &domain.TeamEarningRecord{
		ID:           model.ID,
		UserID:       model.UserID,
		SourceUserID: model.SourceUserID,
		Level:        model.Level,
		Amount:       model.Amount,
		RunDate:      model.RunDate,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMTeamEarning(record *domain.TeamEarningRecord) *models.TeamEarningRecordModel {
	return &models.TeamEarningRecordModel{
		ID:           record.ID,
		UserID:       record.UserID,
		SourceUserID: record.SourceUserID,
		Level:        record.Level,
		Amount:       record.Amount,
		RunDate:      record.RunDate,
		CreatedAt:    record.CreatedAt,
	}
}
