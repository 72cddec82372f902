package distribution

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	distributiondto "github.com/LavaJover/shvark-reward-service/internal/usecase/dto/distribution"
)

// teamContribution is one (source user, level, amount) tuple accumulated while
// walking an earner's sponsor chain.
type teamContribution struct {
	SourceUserID string
	Level        int
	Amount       float64
}

type pendingReward struct {
	Total         float64
	Contributions []teamContribution
}

// DistributeTeamEarnings runs the team pass: every user who accrued ordinary
// yield in the day's ROI run feeds a level-weighted share up their sponsor
// chain. Each sponsor's accumulated reward is applied against that sponsor's
// own active entries' remaining caps, one transaction per sponsor.
//
// The run row keyed by (stage, run date) makes a second invocation before the
// next ROI run fail with ErrRunAlreadyCompleted instead of double-paying.
func (uc *DefaultDistributionUsecase) DistributeTeamEarnings(ctx context.Context, input *distributiondto.TeamInput) (*distributiondto.TeamSummary, error) {
	runDate := input.RunDate
	if runDate.IsZero() {
		runDate = time.Now()
	}
	runDate = domain.RunDay(runDate)
	summary := &distributiondto.TeamSummary{RunDate: runDate}

	run := uc.newRun(domain.RunStageTeam, runDate)
	if err := uc.RunRepo.CreateRun(run); err != nil {
		if !errors.Is(err, domain.ErrRunAlreadyCompleted) {
			uc.recordRunFailed(domain.RunStageTeam)
		}
		return nil, err
	}

	startedAt := time.Now()
	uc.recordRunStarted(domain.RunStageTeam)

	earners, err := uc.YieldRepo.GetByRunDate(runDate)
	if err != nil {
		uc.recordRunFailed(domain.RunStageTeam)
		uc.releaseRun(run)
		return nil, err
	}
	if len(earners) == 0 {
		uc.finishRun(run)
		return summary, nil
	}

	relationships, err := uc.ReferralRepo.GetAllRelationships()
	if err != nil {
		uc.recordRunFailed(domain.RunStageTeam)
		uc.releaseRun(run)
		return nil, err
	}
	sponsorOf := make(map[string]string, len(relationships))
	for _, relationship := range relationships {
		sponsorOf[relationship.UserID] = relationship.SponsorID
	}

	pending := accumulatePendingRewards(earners, sponsorOf)

	// Deterministic processing order.
	sponsorIDs := make([]string, 0, len(pending))
	for sponsorID := range pending {
		sponsorIDs = append(sponsorIDs, sponsorID)
	}
	sort.Strings(sponsorIDs)

	for _, sponsorID := range sponsorIDs {
		reward := pending[sponsorID]
		credited, missed, entriesUpdated, recordsLogged, completed, err := uc.applySponsorReward(ctx, sponsorID, reward, runDate)
		if err != nil {
			slog.Error("team earning unit failed", "sponsor_id", sponsorID, "error", err.Error())
			uc.recordUnitError(domain.RunStageTeam)
			continue
		}

		if credited > 0 {
			summary.RewardedUsers++
		}
		summary.TotalRewarded = domain.RoundAmount(summary.TotalRewarded + credited)
		summary.TotalMissed = domain.RoundAmount(summary.TotalMissed + missed)
		summary.TotalEntriesUpdated += entriesUpdated
		summary.RecordsLogged += recordsLogged
		uc.recordPayout(domain.RunStageTeam, credited, missed, completed)
	}

	run.TotalUsers = summary.RewardedUsers
	run.TotalRewarded = summary.TotalRewarded
	run.TotalMissed = summary.TotalMissed
	uc.finishRun(run)
	uc.recordRunFinished(domain.RunStageTeam, time.Since(startedAt))

	return summary, nil
}

// accumulatePendingRewards walks each earner's sponsor chain up to six levels
// and buckets level-weighted rewards per sponsor. The visited set stops the
// walk on a corrupted cyclic chain; the hop bound is the hard stop either way.
func accumulatePendingRewards(earners []*domain.DailyYieldRecord, sponsorOf map[string]string) map[string]*pendingReward {
	pending := make(map[string]*pendingReward)

	for _, earner := range earners {
		visited := map[string]bool{earner.UserID: true}
		current := earner.UserID

		for level := 1; level <= len(teamLevelWeights); level++ {
			sponsorID, ok := sponsorOf[current]
			if !ok {
				break
			}
			if visited[sponsorID] {
				break
			}
			visited[sponsorID] = true

			reward := domain.RoundAmount(earner.Amount * teamLevelWeights[level-1])
			if reward > 0 {
				bucket := pending[sponsorID]
				if bucket == nil {
					bucket = &pendingReward{}
					pending[sponsorID] = bucket
				}
				bucket.Total = domain.RoundAmount(bucket.Total + reward)
				bucket.Contributions = append(bucket.Contributions, teamContribution{
					SourceUserID: earner.UserID,
					Level:        level,
					Amount:       reward,
				})
			}
			current = sponsorID
		}
	}
	return pending
}

// applySponsorReward settles one sponsor's pending reward inside one transaction.
func (uc *DefaultDistributionUsecase) applySponsorReward(ctx context.Context, sponsorID string, reward *pendingReward, runDate time.Time) (credited, missed float64, entriesUpdated, recordsLogged, completed int, err error) {
	err = uc.UoW.Do(ctx, func(repos *domain.TxRepos) error {
		now := time.Now()

		entries, err := repos.Stakes.GetActiveEntriesByUserID(sponsorID)
		if err != nil {
			return err
		}

		app := applyToEntries(entries, reward.Total, now)
		for _, entry := range app.Updated {
			if err := repos.Stakes.UpdateEntry(entry); err != nil {
				return err
			}
		}
		for _, entry := range app.Completed {
			if err := repos.Transactions.CreateRecord(&domain.TransactionRecord{
				UserID:    sponsorID,
				Type:      domain.TxTypePrincipalRelease,
				Amount:    entry.Principal,
				Currency:  entry.Currency,
				EntryID:   entry.ID,
				CreatedAt: now,
			}); err != nil {
				return err
			}
		}

		balance, err := repos.Balances.GetByUserID(sponsorID)
		if err != nil {
			return err
		}
		balance.Available = domain.RoundAmount(balance.Available + app.Credited + app.Released)
		balance.TeamEarningsTotal = domain.RoundAmount(balance.TeamEarningsTotal + app.Credited)
		balance.Staked = domain.RoundAmount(balance.Staked - app.Released)
		balance.MissedTotal = domain.RoundAmount(balance.MissedTotal + app.Missed)
		if err := repos.Balances.UpdateBalance(balance); err != nil {
			return err
		}

		if app.Credited > 0 {
			if err := repos.Transactions.CreateRecord(&domain.TransactionRecord{
				UserID:    sponsorID,
				Type:      domain.TxTypeTeamEarning,
				Amount:    app.Credited,
				Currency:  domain.CurrencyUSDT,
				CreatedAt: now,
			}); err != nil {
				return err
			}

			records := sliceCredited(sponsorID, reward.Contributions, app.Credited, runDate)
			if err := repos.TeamEarnings.CreateRecords(records); err != nil {
				return err
			}
			recordsLogged = len(records)
		}

		credited = app.Credited
		missed = app.Missed
		entriesUpdated = len(app.Updated)
		completed = len(app.Completed)
		return nil
	})
	if err != nil {
		return 0, 0, 0, 0, 0, err
	}
	return credited, missed, entriesUpdated, recordsLogged, completed, nil
}

// sliceCredited allocates the credited total across contribution tuples,
// earliest recorded first: a contribution is logged up to its full amount,
// the remainder rolls to the next. Contributions beyond the credited total
// were never paid and are not logged.
func sliceCredited(sponsorID string, contributions []teamContribution, credited float64, runDate time.Time) []*domain.TeamEarningRecord {
	var records []*domain.TeamEarningRecord
	remaining := credited

	for _, contribution := range contributions {
		if remaining <= 0 {
			break
		}
		amount := contribution.Amount
		if amount > remaining {
			amount = remaining
		}
		records = append(records, &domain.TeamEarningRecord{
			UserID:       sponsorID,
			SourceUserID: contribution.SourceUserID,
			Level:        contribution.Level,
			Amount:       amount,
			RunDate:      runDate,
		})
		remaining = domain.RoundAmount(remaining - amount)
	}
	return records
}
