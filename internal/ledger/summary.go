// Package ledger derives balances and summaries from movement histories.
// Everything here is a pure function over borrowed data.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

var (
	hundred = decimal.NewFromInt(100)

	// MinInterest is the smallest per-deposit interest that counts toward the summary.
	MinInterest = decimal.NewFromInt(1)
)

// Summarize computes balance, deposit and withdrawal totals, and qualifying
// interest for movements at rate percent.
func Summarize(movements []model.Movement, rate decimal.Decimal) model.Summary {
	amounts := make([]decimal.Decimal, len(movements))
	for i, m := range movements {
		amounts[i] = m.Amount
	}
	return SummarizeAmounts(amounts, rate)
}

// SummarizeAmounts is Summarize over bare signed amounts.
func SummarizeAmounts(amounts []decimal.Decimal, rate decimal.Decimal) model.Summary {
	s := model.Summary{
		Balance:            decimal.Zero,
		TotalDeposits:      decimal.Zero,
		TotalWithdrawals:   decimal.Zero,
		QualifyingInterest: decimal.Zero,
	}
	out := decimal.Zero
	for _, amt := range amounts {
		s.Balance = s.Balance.Add(amt)
		switch {
		case amt.IsPositive():
			s.TotalDeposits = s.TotalDeposits.Add(amt)
			if interest := Interest(amt, rate); interest.GreaterThanOrEqual(MinInterest) {
				s.QualifyingInterest = s.QualifyingInterest.Add(interest)
			}
		case amt.IsNegative():
			out = out.Add(amt)
		}
	}
	s.TotalWithdrawals = out.Abs()
	return s
}

// Interest returns amount * rate / 100.
func Interest(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred)
}

// Balance sums all movement amounts.
func Balance(movements []model.Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m.Amount)
	}
	return total
}

// HasMovementAtLeast reports whether any movement amount is >= threshold.
func HasMovementAtLeast(movements []model.Movement, threshold decimal.Decimal) bool {
	for _, m := range movements {
		if m.Amount.GreaterThanOrEqual(threshold) {
			return true
		}
	}
	return false
}
