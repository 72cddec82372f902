package repository

import (
	"fmt"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultVoucherRepository struct {
	DB *gorm.DB
}

func NewDefaultVoucherRepository(db *gorm.DB) *DefaultVoucherRepository {
	return &DefaultVoucherRepository{DB: db}
}

func (r *DefaultVoucherRepository) CreateLink(link *domain.VoucherStakeLink) error {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	model := models.VoucherStakeLinkModel{
		ID:          link.ID,
		VoucherCode: link.VoucherCode,
		EntryID:     link.EntryID,
		UserID:      link.UserID,
		Status:      link.Status,
		CreatedAt:   link.CreatedAt,
	}
	if err := r.DB.Create(&model).Error; err != nil {
		return fmt.Errorf("create voucher link: %w", err)
	}
	return nil
}

func (r *DefaultVoucherRepository) GetAppliedEntryIDs(entryIDs []string) (map[string]bool, error) {
	applied := make(map[string]bool)
	if len(entryIDs) == 0 {
		return applied, nil
	}

	var ids []string
	if err := r.DB.Model(&models.VoucherStakeLinkModel{}).
		Where("entry_id IN ? AND status = ?", entryIDs, domain.VoucherLinkApplied).
		Pluck("entry_id", &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		applied[id] = true
	}
	return applied, nil
}
