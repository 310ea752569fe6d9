package model

import "github.com/shopspring/decimal"

// Summary is derived from an account's movements and is never stored.
type Summary struct {
	Balance            decimal.Decimal
	TotalDeposits      decimal.Decimal
	TotalWithdrawals   decimal.Decimal // absolute value
	QualifyingInterest decimal.Decimal
}
