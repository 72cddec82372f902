package background

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/LavaJover/shvark-reward-service/internal/config"
	"github.com/LavaJover/shvark-reward-service/internal/domain"
	distributiondto "github.com/LavaJover/shvark-reward-service/internal/usecase/dto/distribution"
)

type stubDistributionUsecase struct {
	roiCalls  int
	teamCalls int
	roiErr    error
	teamErr   error
}

func (s *stubDistributionUsecase) DistributeDailyStakingRewards(ctx context.Context, input *distributiondto.RoiInput) (*distributiondto.RoiSummary, error) {
	s.roiCalls++
	if s.roiErr != nil {
		return nil, s.roiErr
	}
	return &distributiondto.RoiSummary{RunDate: domain.RunDay(input.RunDate)}, nil
}

func (s *stubDistributionUsecase) DistributeTeamEarnings(ctx context.Context, input *distributiondto.TeamInput) (*distributiondto.TeamSummary, error) {
	s.teamCalls++
	if s.teamErr != nil {
		return nil, s.teamErr
	}
	return &distributiondto.TeamSummary{RunDate: domain.RunDay(input.RunDate)}, nil
}

func newTestScheduler(stub *stubDistributionUsecase) *DistributionScheduler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDistributionScheduler(stub, logger, config.Scheduler{DistributionCronSpec: "0 0 * * *"})
}

func TestRunDailyDistribution_RoiThenTeam(t *testing.T) {
	stub := &stubDistributionUsecase{}

	newTestScheduler(stub).RunDailyDistribution()

	if stub.roiCalls != 1 || stub.teamCalls != 1 {
		t.Fatalf("expected one roi and one team call, got %d / %d", stub.roiCalls, stub.teamCalls)
	}
}

func TestRunDailyDistribution_RoiFailureSkipsTeamPass(t *testing.T) {
	stub := &stubDistributionUsecase{roiErr: domain.ErrRunAlreadyCompleted}

	newTestScheduler(stub).RunDailyDistribution()

	if stub.teamCalls != 0 {
		t.Fatalf("expected team pass skipped, got %d calls", stub.teamCalls)
	}
}

func TestRunDailyDistribution_TeamGuardIsNotFatal(t *testing.T) {
	stub := &stubDistributionUsecase{teamErr: domain.ErrRunAlreadyCompleted}

	scheduler := newTestScheduler(stub)
	scheduler.RunDailyDistribution()
	scheduler.RunDailyDistribution()

	if stub.roiCalls != 2 || stub.teamCalls != 2 {
		t.Fatalf("expected both passes attempted each trigger, got %d / %d", stub.roiCalls, stub.teamCalls)
	}
}
