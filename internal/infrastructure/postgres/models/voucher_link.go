package models

import (
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
)

type VoucherStakeLinkModel struct {
	ID          string                   `gorm:"primaryKey;type:uuid"`
	VoucherCode string                   `gorm:"index;not null"`
	EntryID     string                   `gorm:"type:uuid;uniqueIndex;not null"`
	UserID      string                   `gorm:"index;not null"`
	Status      domain.VoucherLinkStatus `gorm:"not null"`
	CreatedAt   time.Time
}

func (VoucherStakeLinkModel) TableName() string {
	return "voucher_stake_links"
}
