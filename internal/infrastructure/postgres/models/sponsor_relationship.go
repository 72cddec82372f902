package models

import "time"

type SponsorRelationshipModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	UserID    string `gorm:"uniqueIndex;not null"`
	SponsorID string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SponsorRelationshipModel) TableName() string {
	return "sponsor_relationships"
}
