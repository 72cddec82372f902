package domain

import "math"

// CurrencyUSDT is the ledger currency of the staking platform.
const CurrencyUSDT = "USDT"

// amountPrecision matches the 8-digit USDT precision used across the platform.
const amountPrecision = 1e8

// RoundAmount rounds a USDT amount to 8 decimal places. Applied at every
// payout boundary so earned totals compare exactly against caps.
func RoundAmount(v float64) float64 {
	return math.Round(v*amountPrecision) / amountPrecision
}
