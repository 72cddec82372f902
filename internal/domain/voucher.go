package domain

import "time"

type VoucherLinkStatus string

const (
	VoucherLinkApplied VoucherLinkStatus = "applied"
	VoucherLinkRevoked VoucherLinkStatus = "revoked"
)

// VoucherStakeLink marks a stake entry as created by redeeming a promotional
// voucher. At most one applied link exists per entry.
type VoucherStakeLink struct {
	ID          string
	VoucherCode string
	EntryID     string
	UserID      string
	Status      VoucherLinkStatus
	CreatedAt   time.Time
}

type VoucherRepository interface {
	CreateLink(link *VoucherStakeLink) error
	// GetAppliedEntryIDs returns the subset of entryIDs that have an applied
	// voucher link, i.e. whose yield is promotional.
	GetAppliedEntryIDs(entryIDs []string) (map[string]bool, error)
}
