package models

import (
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
)

type DistributionRunModel struct {
	ID            string          `gorm:"primaryKey;type:uuid"`
	Token         string          `gorm:"not null"`
	Stage         domain.RunStage `gorm:"uniqueIndex:idx_stage_run_date;not null"`
	RunDate       time.Time       `gorm:"uniqueIndex:idx_stage_run_date;not null"`
	TotalUsers    int             `gorm:"not null;default:0"`
	TotalRewarded float64         `gorm:"not null;default:0"`
	TotalMissed   float64         `gorm:"not null;default:0"`
	StartedAt     time.Time
	FinishedAt    *time.Time `gorm:"default:null"`
}

func (DistributionRunModel) TableName() string {
	return "distribution_runs"
}
