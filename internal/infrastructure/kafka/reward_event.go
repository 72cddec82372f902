package publisher

import "time"

// RewardRunEvent is published after each distribution stage finishes.
type RewardRunEvent struct {
	RunID         string    `json:"run_id"`
	Token         string    `json:"token"`
	Stage         string    `json:"stage"`
	RunDate       time.Time `json:"run_date"`
	TotalUsers    int       `json:"total_users"`
	TotalRewarded float64   `json:"total_rewarded"`
	TotalMissed   float64   `json:"total_missed"`
	Currency      string    `json:"currency"`
}
