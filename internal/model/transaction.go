package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind classifies a movement for display.
type MovementKind string

const (
	KindDeposit    MovementKind = "deposit"
	KindWithdrawal MovementKind = "withdrawal"
)

// Movement is one signed transaction and the moment it happened.
type Movement struct {
	Amount decimal.Decimal // positive = deposit, negative = withdrawal
	Date   time.Time
}

// NewMovement pairs an amount with its timestamp.
func NewMovement(amount decimal.Decimal, date time.Time) Movement {
	return Movement{Amount: amount, Date: date}
}

// Kind reports deposit for positive amounts and withdrawal otherwise.
func (m Movement) Kind() MovementKind {
	if m.Amount.IsPositive() {
		return KindDeposit
	}
	return KindWithdrawal
}
