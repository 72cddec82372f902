package domain

import "context"

// TxRepos is the repository set bound to a single store transaction.
type TxRepos struct {
	Stakes       StakeRepository
	Balances     BalanceRepository
	Transactions TransactionRepository
	Vouchers     VoucherRepository
	Yields       YieldLedgerRepository
	TeamEarnings TeamEarningRepository
}

// UnitOfWork runs fn inside one atomic store transaction. The distributors
// invoke it once per user (ROI) or once per sponsor (team earnings) so a
// failure rolls back only that unit, never the whole batch.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos *TxRepos) error) error
}
