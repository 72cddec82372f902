package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultReferralRepository struct {
	DB *gorm.DB
}

func NewDefaultReferralRepository(db *gorm.DB) *DefaultReferralRepository {
	return &DefaultReferralRepository{DB: db}
}

func (r *DefaultReferralRepository) CreateRelationship(relationship *domain.SponsorRelationship) error {
	if relationship.ID == "" {
		relationship.ID = uuid.New().String()
	}
	if relationship.CreatedAt.IsZero() {
		relationship.CreatedAt = time.Now()
	}
	model := mappers.ToGORMRelationship(relationship)

	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("create sponsor relationship: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSponsorExists
	}
	return nil
}

func (r *DefaultReferralRepository) GetAllRelationships() ([]*domain.SponsorRelationship, error) {
	var relationModels []models.SponsorRelationshipModel
	if err := r.DB.Find(&relationModels).Error; err != nil {
		return nil, err
	}

	relationships := make([]*domain.SponsorRelationship, len(relationModels))
	for i, model := range relationModels {
		relationships[i] = mappers.ToDomainRelationship(&model)
	}
	return relationships, nil
}

func (r *DefaultReferralRepository) GetSponsorByUserID(userID string) (*domain.SponsorRelationship, error) {
	var model models.SponsorRelationshipModel
	if err := r.DB.First(&model, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainRelationship(&model), nil
}
