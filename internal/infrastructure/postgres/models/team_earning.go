package models

import "time"

type TeamEarningRecordModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	UserID       string    `gorm:"index;not null"`
	SourceUserID string    `gorm:"index;not null"`
	Level        int       `gorm:"not null"`
	Amount       float64   `gorm:"not null"`
	RunDate      time.Time `gorm:"index;not null"`
	CreatedAt    time.Time
}

func (TeamEarningRecordModel) TableName() string {
	return "team_earning_records"
}
