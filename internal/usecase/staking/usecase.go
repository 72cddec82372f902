package staking

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	stakingdto "github.com/LavaJover/shvark-reward-service/internal/usecase/dto/staking"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

type StakingUsecase interface {
	CreateStake(ctx context.Context, input *stakingdto.CreateStakeInput) (*domain.StakeEntry, error)
	RedeemVoucherStake(ctx context.Context, input *stakingdto.RedeemVoucherStakeInput) (*domain.StakeEntry, error)
}

type DefaultStakingUsecase struct {
	UoW domain.UnitOfWork
}

func NewDefaultStakingUsecase(uow domain.UnitOfWork) *DefaultStakingUsecase {
	return &DefaultStakingUsecase{UoW: uow}
}

// CreateStake purchases a package from the user's available balance: the
// amount moves to staked and a capped entry starts earning the next ROI run.
func (uc *DefaultStakingUsecase) CreateStake(ctx context.Context, input *stakingdto.CreateStakeInput) (*domain.StakeEntry, error) {
	now := time.Now()
	entry := &domain.StakeEntry{
		ID:           uuid.New().String(),
		UserID:       input.UserID,
		Principal:    input.Amount,
		DailyRate:    input.DailyRate,
		Cap:          domain.Capped(domain.RoundAmount(input.Amount * input.CapMultiplier)),
		Status:       domain.StakeStatusActive,
		PackageLabel: input.PackageLabel,
		Currency:     domain.CurrencyUSDT,
		CreatedAt:    now,
		EndsAt:       now.AddDate(0, 0, input.DurationDays),
	}

	err := uc.UoW.Do(ctx, func(repos *domain.TxRepos) error {
		balance, err := repos.Balances.GetByUserID(input.UserID)
		if err != nil {
			return err
		}
		if balance.Available < input.Amount {
			return domain.ErrInsufficientFunds
		}
		balance.Available = domain.RoundAmount(balance.Available - input.Amount)
		balance.Staked = domain.RoundAmount(balance.Staked + input.Amount)
		if err := repos.Balances.UpdateBalance(balance); err != nil {
			return err
		}

		if err := repos.Stakes.CreateEntry(entry); err != nil {
			return err
		}
		return repos.Transactions.CreateRecord(&domain.TransactionRecord{
			UserID:    input.UserID,
			Type:      domain.TxTypeStakePurchase,
			Amount:    input.Amount,
			Currency:  entry.Currency,
			EntryID:   entry.ID,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// RedeemVoucherStake creates an uncapped promotional entry backed by a voucher
// link, so its yield is paid but excluded from team earnings. No balance is
// debited: the principal is voucher-funded.
func (uc *DefaultStakingUsecase) RedeemVoucherStake(ctx context.Context, input *stakingdto.RedeemVoucherStakeInput) (*domain.StakeEntry, error) {
	codeGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &domain.StakeEntry{
		ID:           uuid.New().String(),
		UserID:       input.UserID,
		Principal:    input.Amount,
		DailyRate:    input.DailyRate,
		Cap:          domain.Uncapped(),
		Status:       domain.StakeStatusActive,
		PackageLabel: input.PackageLabel,
		Currency:     domain.CurrencyUSDT,
		CreatedAt:    now,
		EndsAt:       now.AddDate(0, 0, input.DurationDays),
	}

	err = uc.UoW.Do(ctx, func(repos *domain.TxRepos) error {
		if err := repos.Stakes.CreateEntry(entry); err != nil {
			return err
		}
		if err := repos.Vouchers.CreateLink(&domain.VoucherStakeLink{
			VoucherCode: codeGenerator(),
			EntryID:     entry.ID,
			UserID:      input.UserID,
			Status:      domain.VoucherLinkApplied,
			CreatedAt:   now,
		}); err != nil {
			return err
		}
		return repos.Transactions.CreateRecord(&domain.TransactionRecord{
			UserID:    input.UserID,
			Type:      domain.TxTypeVoucherStake,
			Amount:    input.Amount,
			Currency:  entry.Currency,
			EntryID:   entry.ID,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
