package distribution

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
	distributiondto "github.com/LavaJover/shvark-reward-service/internal/usecase/dto/distribution"
)

// DistributeDailyStakingRewards runs the daily ROI pass: every active stake
// entry earns principal * dailyRate, clamped to its remaining lifetime cap.
// Each user is settled in their own transaction so one failing user does not
// roll back the batch.
func (uc *DefaultDistributionUsecase) DistributeDailyStakingRewards(ctx context.Context, input *distributiondto.RoiInput) (*distributiondto.RoiSummary, error) {
	runDate := input.RunDate
	if runDate.IsZero() {
		runDate = time.Now()
	}
	runDate = domain.RunDay(runDate)
	summary := &distributiondto.RoiSummary{RunDate: runDate}

	var entries []*domain.StakeEntry
	var err error
	if input.UserID != "" {
		entries, err = uc.StakeRepo.GetActiveEntriesByUserID(input.UserID)
	} else {
		entries, err = uc.StakeRepo.GetActiveEntries()
	}
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return summary, nil
	}

	// Targeted single-user re-runs bypass the run guard; the ledger upsert
	// keeps them idempotent per (run date, user).
	var run *domain.DistributionRun
	if input.UserID == "" {
		run = uc.newRun(domain.RunStageROI, runDate)
		if err := uc.RunRepo.CreateRun(run); err != nil {
			if !errors.Is(err, domain.ErrRunAlreadyCompleted) {
				uc.recordRunFailed(domain.RunStageROI)
			}
			return nil, err
		}
	}

	startedAt := time.Now()
	uc.recordRunStarted(domain.RunStageROI)

	// Entries arrive ordered by creation time; grouping preserves that order
	// per user, so older entries absorb available cap first.
	entriesByUser := make(map[string][]*domain.StakeEntry)
	userOrder := make([]string, 0)
	for _, entry := range entries {
		if _, seen := entriesByUser[entry.UserID]; !seen {
			userOrder = append(userOrder, entry.UserID)
		}
		entriesByUser[entry.UserID] = append(entriesByUser[entry.UserID], entry)
	}

	for _, userID := range userOrder {
		userEntries := entriesByUser[userID]
		result, err := uc.distributeUserYield(ctx, userID, userEntries, runDate)
		if err != nil {
			slog.Error("daily reward unit failed", "user_id", userID, "error", err.Error())
			uc.recordUnitError(domain.RunStageROI)
			continue
		}

		summary.TotalUsers++
		summary.TotalEntries += len(userEntries)
		summary.TotalRewarded = domain.RoundAmount(summary.TotalRewarded + result.Total)
		summary.TotalMissed = domain.RoundAmount(summary.TotalMissed + result.Missed)
		summary.Results = append(summary.Results, *result)
		uc.recordPayout(domain.RunStageROI, result.Total, result.Missed, result.CompletedEntries)
	}

	if run != nil {
		run.TotalUsers = summary.TotalUsers
		run.TotalRewarded = summary.TotalRewarded
		run.TotalMissed = summary.TotalMissed
		uc.finishRun(run)
	}
	uc.recordRunFinished(domain.RunStageROI, time.Since(startedAt))

	return summary, nil
}

// distributeUserYield settles one user's entries inside one transaction.
func (uc *DefaultDistributionUsecase) distributeUserYield(ctx context.Context, userID string, entries []*domain.StakeEntry, runDate time.Time) (*distributiondto.UserRoiResult, error) {
	entryIDs := make([]string, len(entries))
	for i, entry := range entries {
		entryIDs[i] = entry.ID
	}
	promotional, err := uc.VoucherRepo.GetAppliedEntryIDs(entryIDs)
	if err != nil {
		return nil, err
	}

	result := &distributiondto.UserRoiResult{UserID: userID}
	err = uc.UoW.Do(ctx, func(repos *domain.TxRepos) error {
		now := time.Now()

		for _, entry := range entries {
			// Flushed entries: full daily yield, no cap bookkeeping, never complete.
			if entry.Cap.Uncapped {
				payout := entry.DailyYield()
				if payout > 0 {
					if err := repos.Transactions.CreateRecord(&domain.TransactionRecord{
						UserID:    userID,
						Type:      domain.TxTypeDailyReward,
						Amount:    payout,
						Currency:  entry.Currency,
						EntryID:   entry.ID,
						CreatedAt: now,
					}); err != nil {
						return err
					}
					result.Total = domain.RoundAmount(result.Total + payout)
					if promotional[entry.ID] {
						result.Promotional = domain.RoundAmount(result.Promotional + payout)
					} else {
						result.Ordinary = domain.RoundAmount(result.Ordinary + payout)
					}
				}
				result.Entries = append(result.Entries, distributiondto.EntryRoiResult{EntryID: entry.ID, Payout: payout})
				continue
			}

			remaining := entry.Cap.Remaining(entry.Earned)
			if remaining <= 0 {
				// Exhausted before this run: release principal, no payout.
				if entry.Status == domain.StakeStatusActive {
					entry.Complete(now)
					if err := uc.releasePrincipal(repos, entry, now, result); err != nil {
						return err
					}
					result.Entries = append(result.Entries, distributiondto.EntryRoiResult{EntryID: entry.ID, CapReached: true})
				}
				continue
			}

			raw := entry.DailyYield()
			payout := raw
			if payout > remaining {
				payout = remaining
			}
			result.Missed = domain.RoundAmount(result.Missed + raw - payout)

			capReached := false
			if payout > 0 {
				entry.Earned = domain.RoundAmount(entry.Earned + payout)
				if entry.Earned >= entry.Cap.Limit {
					capReached = true
					entry.Complete(now)
				}
				if !capReached {
					if err := repos.Stakes.UpdateEntry(entry); err != nil {
						return err
					}
				}
				if err := repos.Transactions.CreateRecord(&domain.TransactionRecord{
					UserID:    userID,
					Type:      domain.TxTypeDailyReward,
					Amount:    payout,
					Currency:  entry.Currency,
					EntryID:   entry.ID,
					CreatedAt: now,
				}); err != nil {
					return err
				}
				if capReached {
					if err := uc.releasePrincipal(repos, entry, now, result); err != nil {
						return err
					}
				}
				result.Total = domain.RoundAmount(result.Total + payout)
				if promotional[entry.ID] {
					result.Promotional = domain.RoundAmount(result.Promotional + payout)
				} else {
					result.Ordinary = domain.RoundAmount(result.Ordinary + payout)
				}
			}
			result.Entries = append(result.Entries, distributiondto.EntryRoiResult{EntryID: entry.ID, Payout: payout, CapReached: capReached})
		}

		// Nothing moved: skip the balance write entirely.
		if result.Total == 0 && result.ReleasedPrincipal == 0 && result.Missed == 0 {
			return nil
		}

		balance, err := repos.Balances.GetByUserID(userID)
		if err != nil {
			return err
		}
		balance.Available = domain.RoundAmount(balance.Available + result.Total + result.ReleasedPrincipal)
		balance.Staked = domain.RoundAmount(balance.Staked - result.ReleasedPrincipal)
		balance.MissedTotal = domain.RoundAmount(balance.MissedTotal + result.Missed)
		balance.LastPayout = result.Total
		if err := repos.Balances.UpdateBalance(balance); err != nil {
			return err
		}

		// Only ordinary yield feeds the team pass.
		if result.Ordinary > 0 {
			if err := repos.Yields.UpsertRecord(&domain.DailyYieldRecord{
				RunDate: runDate,
				UserID:  userID,
				Amount:  result.Ordinary,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// releasePrincipal moves a completed entry's principal back to the available
// balance accounting and writes the audit record.
func (uc *DefaultDistributionUsecase) releasePrincipal(repos *domain.TxRepos, entry *domain.StakeEntry, now time.Time, result *distributiondto.UserRoiResult) error {
	if err := repos.Stakes.UpdateEntry(entry); err != nil {
		return err
	}
	if err := repos.Transactions.CreateRecord(&domain.TransactionRecord{
		UserID:    entry.UserID,
		Type:      domain.TxTypePrincipalRelease,
		Amount:    entry.Principal,
		Currency:  entry.Currency,
		EntryID:   entry.ID,
		CreatedAt: now,
	}); err != nil {
		return err
	}
	result.ReleasedPrincipal = domain.RoundAmount(result.ReleasedPrincipal + entry.Principal)
	result.CompletedEntries++
	return nil
}
