package distribution

import (
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
)

func (uc *DefaultDistributionUsecase) recordRunStarted(stage domain.RunStage) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RunsTotal.WithLabelValues(string(stage)).Inc()
}

func (uc *DefaultDistributionUsecase) recordRunFinished(stage domain.RunStage, elapsed time.Duration) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RunDuration.WithLabelValues(string(stage)).Observe(elapsed.Seconds())
}

func (uc *DefaultDistributionUsecase) recordRunFailed(stage domain.RunStage) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RunsFailedTotal.WithLabelValues(string(stage)).Inc()
}

func (uc *DefaultDistributionUsecase) recordUnitError(stage domain.RunStage) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.UnitErrorsTotal.WithLabelValues(string(stage)).Inc()
}

func (uc *DefaultDistributionUsecase) recordPayout(stage domain.RunStage, rewarded, missed float64, completed int) {
	if uc.Metrics == nil {
		return
	}
	if rewarded > 0 {
		uc.Metrics.RewardedTotal.WithLabelValues(string(stage), domain.CurrencyUSDT).Add(rewarded)
	}
	if missed > 0 {
		uc.Metrics.MissedTotal.WithLabelValues(string(stage), domain.CurrencyUSDT).Add(missed)
	}
	if completed > 0 {
		uc.Metrics.EntriesCompleted.WithLabelValues(string(stage)).Add(float64(completed))
	}
}
