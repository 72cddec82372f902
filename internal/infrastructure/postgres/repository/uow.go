package repository

import (
	"context"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"gorm.io/gorm"
)

// DefaultUnitOfWork wraps gorm's transaction primitive. Each Do call is one
// all-or-nothing unit: the distributors call it once per user / per sponsor.
type DefaultUnitOfWork struct {
	DB *gorm.DB
}

func NewDefaultUnitOfWork(db *gorm.DB) *DefaultUnitOfWork {
	return &DefaultUnitOfWork{DB: db}
}

func (u *DefaultUnitOfWork) Do(ctx context.Context, fn func(repos *domain.TxRepos) error) error {
	return u.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&domain.TxRepos{
			Stakes:       NewDefaultStakeRepository(tx),
			Balances:     NewDefaultBalanceRepository(tx),
			Transactions: NewDefaultTransactionRepository(tx),
			Vouchers:     NewDefaultVoucherRepository(tx),
			Yields:       NewDefaultYieldLedgerRepository(tx),
			TeamEarnings: NewDefaultTeamEarningRepository(tx),
		})
	})
}
