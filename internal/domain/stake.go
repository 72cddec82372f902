package domain

import "time"

type StakeStatus string

const (
	StakeStatusActive    StakeStatus = "active"
	StakeStatusCompleted StakeStatus = "completed"
)

// StakeCap is the lifetime earning ceiling of a stake entry. Uncapped entries
// ("flushed" promotional stakes) pay out daily with no ceiling and never complete.
type StakeCap struct {
	Limit    float64
	Uncapped bool
}

func Capped(limit float64) StakeCap {
	return StakeCap{Limit: limit}
}

func Uncapped() StakeCap {
	return StakeCap{Uncapped: true}
}

// Remaining returns how much of the cap is still available for the given
// earned total. Meaningless for uncapped entries.
func (c StakeCap) Remaining(earned float64) float64 {
	return RoundAmount(c.Limit - earned)
}

type StakeEntry struct {
	ID           string
	UserID       string
	Principal    float64
	DailyRate    float64 // percent per day
	Cap          StakeCap
	Earned       float64
	Status       StakeStatus
	PackageLabel string
	Currency     string
	CreatedAt    time.Time
	EndsAt       time.Time
	CompletedAt  *time.Time
}

// DailyYield is the raw uncapped yield the entry produces per day.
func (e *StakeEntry) DailyYield() float64 {
	return RoundAmount(e.Principal * e.DailyRate / 100)
}

// Complete marks the entry completed so its principal can be released.
func (e *StakeEntry) Complete(at time.Time) {
	e.Status = StakeStatusCompleted
	e.CompletedAt = &at
}

type StakeRepository interface {
	CreateEntry(entry *StakeEntry) error
	// GetActiveEntries returns all active entries ordered by creation time ascending.
	GetActiveEntries() ([]*StakeEntry, error)
	GetActiveEntriesByUserID(userID string) ([]*StakeEntry, error)
	UpdateEntry(entry *StakeEntry) error
}
