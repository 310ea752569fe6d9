package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a customer account with its movement history.
type Account struct {
	Owner        string
	Username     string // derived from Owner initials
	PIN          int
	Movements    []Movement // append order, not necessarily sorted by date
	InterestRate decimal.Decimal
	Currency     string // ISO 4217, e.g. "EUR"
	Locale       string // BCP 47, e.g. "pt-PT"
}

// FirstName returns the first word of the owner's name.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Append records a movement at the end of the history.
func (a *Account) Append(m Movement) {
	a.Movements = append(a.Movements, m)
}

// Clone returns a deep copy whose movement slice is independent of a's.
func (a *Account) Clone() *Account {
	cp := *a
	cp.Movements = make([]Movement, len(a.Movements))
	copy(cp.Movements, a.Movements)
	return &cp
}
