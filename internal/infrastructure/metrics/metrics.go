package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RewardMetrics covers both distribution stages.
type RewardMetrics struct {
	RunsTotal        prometheus.CounterVec
	RunsFailedTotal  prometheus.CounterVec
	RunDuration      prometheus.HistogramVec
	RewardedTotal    prometheus.CounterVec
	MissedTotal      prometheus.CounterVec
	EntriesCompleted prometheus.CounterVec
	UnitErrorsTotal  prometheus.CounterVec
}

func NewRewardMetrics() *RewardMetrics {
	return &RewardMetrics{
		RunsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reward_runs_total",
				Help: "Distribution runs started, by stage",
			},
			[]string{"stage"},
		),

		RunsFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reward_runs_failed_total",
				Help: "Distribution runs that ended with an error, by stage",
			},
			[]string{"stage"},
		),

		RunDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reward_run_duration_seconds",
				Help:    "Wall-clock duration of a distribution run",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			},
			[]string{"stage"},
		),

		RewardedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reward_amount_total",
				Help: "Total amount credited to balances, by stage",
			},
			[]string{"stage", "currency"},
		),

		MissedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reward_missed_amount_total",
				Help: "Total amount lost to exhausted caps, by stage",
			},
			[]string{"stage", "currency"},
		),

		EntriesCompleted: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stake_entries_completed_total",
				Help: "Stake entries that reached their lifetime cap",
			},
			[]string{"stage"},
		),

		UnitErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reward_unit_errors_total",
				Help: "Per-user or per-sponsor units skipped due to an error",
			},
			[]string{"stage"},
		),
	}
}
