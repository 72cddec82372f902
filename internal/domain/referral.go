package domain

import "time"

// SponsorRelationship is a directed edge from an invited user to the user who
// invited them. Each user has at most one sponsor.
type SponsorRelationship struct {
	ID        string
	UserID    string
	SponsorID string
	CreatedAt time.Time
}

// TeamEarningRecord is an audit row written when a team reward is actually
// credited to a sponsor. Rewards entirely lost to cap overflow are not logged.
type TeamEarningRecord struct {
	ID           string
	UserID       string // recipient sponsor
	SourceUserID string // downstream user whose yield generated the reward
	Level        int    // 1..6
	Amount       float64
	RunDate      time.Time
	CreatedAt    time.Time
}

type ReferralRepository interface {
	CreateRelationship(relationship *SponsorRelationship) error
	// GetAllRelationships returns the full sponsor forest.
	GetAllRelationships() ([]*SponsorRelationship, error)
	GetSponsorByUserID(userID string) (*SponsorRelationship, error)
}

type TeamEarningRepository interface {
	CreateRecords(records []*TeamEarningRecord) error
	GetRecordsByUserID(userID string) ([]*TeamEarningRecord, error)
}
