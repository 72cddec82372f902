package domain

import "time"

type UserBalance struct {
	UserID            string
	Available         float64
	Staked            float64
	TeamEarningsTotal float64
	MissedTotal       float64
	LastPayout        float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type BalanceRepository interface {
	GetByUserID(userID string) (*UserBalance, error)
	CreateBalance(balance *UserBalance) error
	UpdateBalance(balance *UserBalance) error
}
