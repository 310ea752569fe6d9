package session

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/model"
)

// LoanTask is a loan that has been approved and is waiting to be credited.
type LoanTask struct {
	Username string
	Amount   decimal.Decimal

	done chan struct{}
	err  error
}

// Done is closed once the loan has been credited or abandoned.
func (t *LoanTask) Done() <-chan struct{} {
	return t.done
}

// Err reports why the loan was not credited. Valid after Done is closed.
func (t *LoanTask) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the loan settles or ctx ends.
func (t *LoanTask) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RequestLoan approves a loan of amount (floored to whole units) when the
// current account has a movement of at least the configured share of it.
// The credit lands after the configured delay; cancelling ctx before then
// abandons it.
func (c *Controller) RequestLoan(ctx context.Context, amount decimal.Decimal) (*LoanTask, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil, ErrNotLoggedIn
	}
	log := c.log.With("session_id", c.sessionID, "user", c.current.Username)

	amount = amount.Floor()
	if !amount.IsPositive() {
		log.Warn(ctx, "loan rejected", "amount", amount.String(), "reason", ErrInvalidAmount)
		return nil, fmt.Errorf("%w: loan amount must be at least 1", ErrInvalidAmount)
	}
	if !ledger.HasMovementAtLeast(c.current.Movements, amount.Mul(c.loanRatio)) {
		log.Warn(ctx, "loan rejected", "amount", amount.String(), "reason", ErrLoanDeclined)
		return nil, ErrLoanDeclined
	}

	acct := c.current
	task := &LoanTask{Username: acct.Username, Amount: amount, done: make(chan struct{})}
	ready := c.clock.After(c.loanDelay)

	c.loans.Go(func() error {
		defer close(task.done)
		select {
		case <-ctx.Done():
			task.err = ctx.Err()
			log.Warn(ctx, "loan abandoned", "amount", amount.String(), "reason", task.err)
			return nil
		case <-ready:
		}
		task.err = c.creditLoan(acct, amount)
		if task.err == nil {
			log.Info(ctx, "loan credited", "amount", amount.String())
		}
		return nil
	})

	log.Info(ctx, "loan approved", "amount", amount.String(), "delay", c.loanDelay)
	return task, nil
}

func (c *Controller) creditLoan(acct *model.Account, amount decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, ok := c.accounts.Get(acct.Username); !ok || cur != acct {
		return ErrAccountClosed
	}
	acct.Append(model.NewMovement(amount, c.clock.Now()))
	if c.current == acct {
		c.timer.Restart()
	}
	return nil
}
