package domain

import "errors"

var (
	ErrBalanceNotFound     = errors.New("balance record not found")
	ErrEntryNotFound       = errors.New("stake entry not found")
	ErrRunAlreadyCompleted = errors.New("distribution run already completed for this date")
	ErrInsufficientFunds   = errors.New("insufficient available balance")
	ErrSponsorExists       = errors.New("user already has a sponsor")
)
