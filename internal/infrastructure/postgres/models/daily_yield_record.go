package models

import "time"

// DailyYieldRecordModel is one immutable ledger row: the ordinary (non-voucher)
// yield a user accrued during one ROI run.
type DailyYieldRecordModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	RunDate   time.Time `gorm:"uniqueIndex:idx_run_user;not null"`
	UserID    string    `gorm:"uniqueIndex:idx_run_user;not null"`
	Amount    float64   `gorm:"not null"`
	CreatedAt time.Time
}

func (DailyYieldRecordModel) TableName() string {
	return "daily_yield_records"
}
