package distributiondto

import "time"

type EntryRoiResult struct {
	EntryID    string
	Payout     float64
	CapReached bool
}

type UserRoiResult struct {
	UserID            string
	Total             float64
	Ordinary          float64
	Promotional       float64
	Missed            float64
	ReleasedPrincipal float64
	CompletedEntries  int
	Entries           []EntryRoiResult
}

type RoiSummary struct {
	RunDate       time.Time
	TotalUsers    int
	TotalEntries  int
	TotalRewarded float64
	TotalMissed   float64
	Results       []UserRoiResult
}

type TeamSummary struct {
	RunDate             time.Time
	RewardedUsers       int
	TotalRewarded       float64
	TotalMissed         float64
	TotalEntriesUpdated int
	RecordsLogged       int
}
