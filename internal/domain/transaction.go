package domain

import "time"

type TransactionType string

const (
	TxTypeDailyReward      TransactionType = "dailyReward"
	TxTypeTeamEarning      TransactionType = "teamEarning"
	TxTypeStakePurchase    TransactionType = "stakePurchase"
	TxTypeVoucherStake     TransactionType = "voucherStake"
	TxTypePrincipalRelease TransactionType = "principalRelease"
)

// TransactionRecord is an append-only ledger entry documenting a balance
// mutation. Records are never updated or deleted.
type TransactionRecord struct {
	ID        string
	UserID    string
	Type      TransactionType
	Amount    float64
	Currency  string
	EntryID   string
	CreatedAt time.Time
}

type TransactionRepository interface {
	CreateRecord(record *TransactionRecord) error
}
