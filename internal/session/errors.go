package session

import (
	"errors"

	"github.com/bankist-dev/bankist/internal/ledger"
)

// Action outcomes. A nil error means the action succeeded; every failure
// leaves accounts, timer and sort state untouched.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidAmount      = ledger.ErrInvalidAmount
	ErrUnknownRecipient   = errors.New("unknown recipient")
	ErrSelfTransfer       = errors.New("cannot transfer to own account")

	ErrNotLoggedIn   = errors.New("not logged in")
	ErrLoanDeclined  = errors.New("loan declined: no deposit of at least the required share of the loan")
	ErrAccountClosed = errors.New("account closed")
)
