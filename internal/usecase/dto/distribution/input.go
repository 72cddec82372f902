package distributiondto

import "time"

// RoiInput scopes a daily reward run. UserID is optional: when set, only that
// user's entries are processed (targeted re-runs) and no run row is written.
type RoiInput struct {
	UserID  string
	RunDate time.Time
}

type TeamInput struct {
	RunDate time.Time
}
