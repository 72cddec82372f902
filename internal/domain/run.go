package domain

import "time"

type RunStage string

const (
	RunStageROI  RunStage = "roi"
	RunStageTeam RunStage = "team"
)

// DistributionRun records one batch invocation of a distribution stage. The
// (stage, run date) pair is unique: a repeated invocation for the same date
// fails on insert, which is the double-payout guard between the ROI reset and
// the team pass.
type DistributionRun struct {
	ID            string
	Token         string
	Stage         RunStage
	RunDate       time.Time
	TotalUsers    int
	TotalRewarded float64
	TotalMissed   float64
	StartedAt     time.Time
	FinishedAt    *time.Time
}

type RunRepository interface {
	// CreateRun inserts the run row. Returns ErrRunAlreadyCompleted when a run
	// for the same stage and date already exists.
	CreateRun(run *DistributionRun) error
	FinishRun(run *DistributionRun) error
	// DeleteRun removes the run row. Called when a run fails before paying
	// anything, so a retry for the same date is not rejected.
	DeleteRun(run *DistributionRun) error
}
