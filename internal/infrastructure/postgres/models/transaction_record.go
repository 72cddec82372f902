package models

import (
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
)

type TransactionRecordModel struct {
	ID        string                 `gorm:"primaryKey;type:uuid"`
	UserID    string                 `gorm:"index;not null"`
	Type      domain.TransactionType `gorm:"index;not null"`
	Amount    float64                `gorm:"not null"`
	Currency  string
	EntryID   string    `gorm:"type:uuid;index"`
	CreatedAt time.Time `gorm:"index"`
}

func (TransactionRecordModel) TableName() string {
	return "transaction_records"
}
