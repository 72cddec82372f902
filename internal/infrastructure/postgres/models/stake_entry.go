package models

import (
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
)

// StakeEntryModel persists a stake entry. Cap = 0 stands for an uncapped
// ("flushed") entry; the mapper translates it to the tagged domain variant.
type StakeEntryModel struct {
	ID           string             `gorm:"primaryKey;type:uuid"`
	UserID       string             `gorm:"index;not null"`
	Principal    float64            `gorm:"not null"`
	DailyRate    float64            `gorm:"not null"`
	Cap          float64            `gorm:"not null;default:0"`
	Earned       float64            `gorm:"not null;default:0"`
	Status       domain.StakeStatus `gorm:"index;not null"`
	PackageLabel string
	Currency     string
	CreatedAt    time.Time `gorm:"index:idx_created_at"`
	UpdatedAt    time.Time
	EndsAt       time.Time
	CompletedAt  *time.Time `gorm:"default:null"`
}

func (StakeEntryModel) TableName() string {
	return "stake_entries"
}
