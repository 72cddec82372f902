package stakingdto

type CreateStakeInput struct {
	UserID        string
	Amount        float64
	DailyRate     float64
	CapMultiplier float64
	PackageLabel  string
	DurationDays  int
}

type RedeemVoucherStakeInput struct {
	UserID       string
	Amount       float64
	DailyRate    float64
	PackageLabel string
	DurationDays int
}
