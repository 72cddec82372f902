package background

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/config"
	"github.com/LavaJover/shvark-reward-service/internal/domain"
	"github.com/LavaJover/shvark-reward-service/internal/usecase/distribution"
	distributiondto "github.com/LavaJover/shvark-reward-service/internal/usecase/dto/distribution"
	"github.com/robfig/cron/v3"
)

// DistributionScheduler drives the daily batch: the ROI pass first, then the
// team pass over the same run date. The run-row guard makes an overlapping or
// repeated trigger a no-op instead of a double payout.
type DistributionScheduler struct {
	cron                *cron.Cron
	distributionUsecase distribution.DistributionUsecase
	logger              *slog.Logger
	cfg                 config.Scheduler
}

func NewDistributionScheduler(distributionUsecase distribution.DistributionUsecase, logger *slog.Logger, cfg config.Scheduler) *DistributionScheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	return &DistributionScheduler{
		cron:                c,
		distributionUsecase: distributionUsecase,
		logger:              logger,
		cfg:                 cfg,
	}
}

func (s *DistributionScheduler) Start() {
	if _, err := s.cron.AddFunc(s.cfg.DistributionCronSpec, s.RunDailyDistribution); err != nil {
		s.logger.Error("failed to schedule daily distribution", "error", err.Error())
	} else {
		s.logger.Info("scheduled daily distribution", "schedule", s.cfg.DistributionCronSpec)
	}
	s.cron.Start()
}

func (s *DistributionScheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *DistributionScheduler) RunDailyDistribution() {
	ctx := context.Background()
	runDate := time.Now()

	roiSummary, err := s.distributionUsecase.DistributeDailyStakingRewards(ctx, &distributiondto.RoiInput{RunDate: runDate})
	if err != nil {
		if errors.Is(err, domain.ErrRunAlreadyCompleted) {
			s.logger.Warn("daily reward run already completed", "run_date", domain.RunDay(runDate))
			return
		}
		s.logger.Error("daily reward run failed", "error", err.Error())
		return
	}
	s.logger.Info("daily reward run finished",
		"run_date", roiSummary.RunDate,
		"users", roiSummary.TotalUsers,
		"entries", roiSummary.TotalEntries,
		"rewarded", roiSummary.TotalRewarded,
		"missed", roiSummary.TotalMissed,
	)

	teamSummary, err := s.distributionUsecase.DistributeTeamEarnings(ctx, &distributiondto.TeamInput{RunDate: runDate})
	if err != nil {
		if errors.Is(err, domain.ErrRunAlreadyCompleted) {
			s.logger.Warn("team earning run already completed", "run_date", domain.RunDay(runDate))
			return
		}
		s.logger.Error("team earning run failed", "error", err.Error())
		return
	}
	s.logger.Info("team earning run finished",
		"run_date", teamSummary.RunDate,
		"rewarded_users", teamSummary.RewardedUsers,
		"rewarded", teamSummary.TotalRewarded,
		"missed", teamSummary.TotalMissed,
		"records", teamSummary.RecordsLogged,
	)
}
