package distribution

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	publisher "github.com/LavaJover/shvark-reward-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/metrics"
	distributiondto "github.com/LavaJover/shvark-reward-service/internal/usecase/dto/distribution"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// teamLevelWeights is the per-level share of a downstream user's ordinary
// yield, level 1 being the direct sponsor.
var teamLevelWeights = [...]float64{0.10, 0.05, 0.03, 0.02, 0.01, 0.01}

type DistributionUsecase interface {
	DistributeDailyStakingRewards(ctx context.Context, input *distributiondto.RoiInput) (*distributiondto.RoiSummary, error)
	DistributeTeamEarnings(ctx context.Context, input *distributiondto.TeamInput) (*distributiondto.TeamSummary, error)
}

type DefaultDistributionUsecase struct {
	UoW          domain.UnitOfWork
	StakeRepo    domain.StakeRepository
	VoucherRepo  domain.VoucherRepository
	ReferralRepo domain.ReferralRepository
	YieldRepo    domain.YieldLedgerRepository
	RunRepo      domain.RunRepository
	Publisher    *publisher.KafkaPublisher
	Metrics      *metrics.RewardMetrics
}

func NewDefaultDistributionUsecase(
	uow domain.UnitOfWork,
	stakeRepo domain.StakeRepository,
	voucherRepo domain.VoucherRepository,
	referralRepo domain.ReferralRepository,
	yieldRepo domain.YieldLedgerRepository,
	runRepo domain.RunRepository,
	kafkaPublisher *publisher.KafkaPublisher,
	rewardMetrics *metrics.RewardMetrics) *DefaultDistributionUsecase {

	return &DefaultDistributionUsecase{
		UoW:          uow,
		StakeRepo:    stakeRepo,
		VoucherRepo:  voucherRepo,
		ReferralRepo: referralRepo,
		YieldRepo:    yieldRepo,
		RunRepo:      runRepo,
		Publisher:    kafkaPublisher,
		Metrics:      rewardMetrics,
	}
}

func (uc *DefaultDistributionUsecase) newRun(stage domain.RunStage, runDate time.Time) *domain.DistributionRun {
	token := uuid.New().String()
	if tokenGenerator, err := nanoid.Standard(15); err == nil {
		token = tokenGenerator()
	}
	return &domain.DistributionRun{
		ID:        uuid.New().String(),
		Token:     token,
		Stage:     stage,
		RunDate:   domain.RunDay(runDate),
		StartedAt: time.Now(),
	}
}

// releaseRun removes the guard row of a run that failed before crediting
// anything. Leaving it in place would reject every retry for that date.
func (uc *DefaultDistributionUsecase) releaseRun(run *domain.DistributionRun) {
	if err := uc.RunRepo.DeleteRun(run); err != nil {
		slog.Error("failed to release distribution run", "run_id", run.ID, "stage", run.Stage, "error", err.Error())
	}
}

func (uc *DefaultDistributionUsecase) finishRun(run *domain.DistributionRun) {
	if err := uc.RunRepo.FinishRun(run); err != nil {
		slog.Error("failed to finish distribution run", "run_id", run.ID, "stage", run.Stage, "error", err.Error())
	}

	if uc.Publisher == nil {
		return
	}
	go func(event publisher.RewardRunEvent) {
		if err := uc.Publisher.PublishRewardRun(event); err != nil {
			slog.Error("failed to publish kafka RewardRunEvent", "stage", event.Stage, "error", err.Error())
		}
	}(publisher.RewardRunEvent{
		RunID:         run.ID,
		Token:         run.Token,
		Stage:         string(run.Stage),
		RunDate:       run.RunDate,
		TotalUsers:    run.TotalUsers,
		TotalRewarded: run.TotalRewarded,
		TotalMissed:   run.TotalMissed,
		Currency:      domain.CurrencyUSDT,
	})
}
