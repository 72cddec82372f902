package domain

import "time"

// DailyYieldRecord is one row of the per-run ordinary yield ledger. The ROI
// pass writes a row per user inside that user's transaction; the team pass
// reads the ledger for its run date. Rows are immutable handoff state between
// the two passes, keyed by (run date, user).
type DailyYieldRecord struct {
	ID        string
	RunDate   time.Time
	UserID    string
	Amount    float64
	CreatedAt time.Time
}

// RunDay truncates a timestamp to the UTC calendar day used as ledger and
// distribution-run key.
func RunDay(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

type YieldLedgerRepository interface {
	// UpsertRecord writes the user's ordinary yield for the run date,
	// replacing any earlier row for the same key (targeted re-runs).
	UpsertRecord(record *DailyYieldRecord) error
	// GetByRunDate returns all ledger rows with a positive amount for the date.
	GetByRunDate(runDate time.Time) ([]*DailyYieldRecord, error)
}
