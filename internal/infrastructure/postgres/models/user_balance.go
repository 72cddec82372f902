package models

import "time"

type UserBalanceModel struct {
	UserID            string  `gorm:"primaryKey"`
	Available         float64 `gorm:"not null;default:0"`
	Staked            float64 `gorm:"not null;default:0"`
	TeamEarningsTotal float64 `gorm:"not null;default:0"`
	MissedTotal       float64 `gorm:"not null;default:0"`
	LastPayout        float64 `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (UserBalanceModel) TableName() string {
	return "user_balances"
}
