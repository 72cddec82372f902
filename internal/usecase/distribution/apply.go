package distribution

import (
	"time"

	"github.com/LavaJover/shvark-reward-service/internal/domain"
)

// capApplication is the outcome of pouring a reward amount into a user's
// entries' remaining caps.
type capApplication struct {
	Credited float64
	Missed   float64
	Released float64
	Updated  []*domain.StakeEntry
	// Completed is the subset of Updated that reached its cap.
	Completed []*domain.StakeEntry
}

// applyToEntries consumes remaining caps oldest-entry-first until the amount
// is exhausted or entries run out; the leftover is missed. Uncapped entries
// absorb nothing and never complete. Entries already at cap are completed so
// their principal gets released even when the pool is empty.
func applyToEntries(entries []*domain.StakeEntry, amount float64, now time.Time) *capApplication {
	app := &capApplication{}
	remaining := domain.RoundAmount(amount)

	for _, entry := range entries {
		if entry.Cap.Uncapped {
			continue
		}

		capLeft := entry.Cap.Remaining(entry.Earned)
		if capLeft <= 0 {
			if entry.Status == domain.StakeStatusActive {
				entry.Complete(now)
				app.Released = domain.RoundAmount(app.Released + entry.Principal)
				app.Updated = append(app.Updated, entry)
				app.Completed = append(app.Completed, entry)
			}
			continue
		}
		if remaining <= 0 {
			continue
		}

		take := capLeft
		if take > remaining {
			take = remaining
		}
		entry.Earned = domain.RoundAmount(entry.Earned + take)
		app.Credited = domain.RoundAmount(app.Credited + take)
		remaining = domain.RoundAmount(remaining - take)

		if entry.Earned >= entry.Cap.Limit {
			entry.Complete(now)
			app.Released = domain.RoundAmount(app.Released + entry.Principal)
			app.Completed = append(app.Completed, entry)
		}
		app.Updated = append(app.Updated, entry)
	}

	app.Missed = remaining
	return app
}
