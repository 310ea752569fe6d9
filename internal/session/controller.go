// Package session runs a logged-in banking session: the inactivity timer,
// the current account and the actions a user can take on it.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/bankist-dev/bankist/internal/accounts"
	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/id"
	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/logging"
	"github.com/bankist-dev/bankist/internal/model"
)

// Controller owns the current account, the logout timer and the sort state.
// It is safe for concurrent use. The tick hook runs while the controller is
// locked and must not call back into it.
type Controller struct {
	mu        sync.Mutex
	accounts  *accounts.Service
	current   *model.Account
	sessionID string
	sorted    bool
	timer     *Timer

	clock     Clock
	log       logging.Logger
	loanDelay time.Duration
	loanRatio decimal.Decimal
	loans     errgroup.Group

	onTick   func(label string)
	onExpire func(username string)
}

// View is a render-ready snapshot of the logged-in session.
type View struct {
	Welcome   string
	Account   *model.Account // detached copy
	Movements []model.Movement
	Summary   model.Summary
	Sorted    bool
	Timer     string
	SessionID string
	Now       time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock for timestamps, the timer and loan delays.
func WithClock(c Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(ctl *Controller) { ctl.log = l }
}

// WithTickHook receives every timer label.
func WithTickHook(fn func(label string)) Option {
	return func(ctl *Controller) { ctl.onTick = fn }
}

// WithExpireHook is called after an inactivity logout with the username.
func WithExpireHook(fn func(username string)) Option {
	return func(ctl *Controller) { ctl.onExpire = fn }
}

// NewController creates a logged-out controller over accts.
func NewController(accts *accounts.Service, cfg *config.Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ratio, err := cfg.LoanRatio()
	if err != nil {
		return nil, err
	}

	c := &Controller{
		accounts:  accts,
		clock:     SystemClock(),
		log:       logging.Discard(),
		loanDelay: cfg.Loan.Delay,
		loanRatio: ratio,
	}
	for _, o := range opts {
		o(c)
	}

	c.timer = NewTimer(cfg.Session.TimeoutSeconds,
		WithTimerClock(c.clock),
		WithInterval(cfg.Session.TickInterval),
		OnTick(c.tickHook),
		OnExpire(c.expire),
	)
	return c, nil
}

// Timer exposes the logout timer.
func (c *Controller) Timer() *Timer {
	return c.timer
}

// Login makes username the current account if pin matches.
func (c *Controller) Login(ctx context.Context, username string, pin int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	acct, ok := c.accounts.Get(username)
	if !ok || acct.PIN != pin {
		c.log.Warn(ctx, "login rejected", "user", id.Normalize(username))
		return ErrInvalidCredentials
	}

	c.current = acct
	c.sorted = false
	c.sessionID = uuid.NewString()
	c.timer.Restart()
	c.log.Info(ctx, "login", "session_id", c.sessionID, "user", acct.Username)
	return nil
}

// Logout ends the session without touching any account.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		c.log.Info(ctx, "logout", "session_id", c.sessionID, "user", c.current.Username)
	}
	c.endLocked()
}

// CurrentUser returns the logged-in username.
func (c *Controller) CurrentUser() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return "", false
	}
	return c.current.Username, true
}

// Transfer moves amount from the current account to the account named to.
func (c *Controller) Transfer(ctx context.Context, to string, amount decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return ErrNotLoggedIn
	}
	log := c.log.With("session_id", c.sessionID, "user", c.current.Username)

	err := c.checkTransferLocked(to, amount)
	if err != nil {
		log.Warn(ctx, "transfer rejected", "to", id.Normalize(to), "amount", amount.String(), "reason", err)
		return err
	}

	recv, _ := c.accounts.Get(to)
	now := c.clock.Now()
	c.current.Append(model.NewMovement(amount.Neg(), now))
	recv.Append(model.NewMovement(amount, now))
	c.timer.Restart()

	log.Info(ctx, "transfer", "to", recv.Username, "amount", amount.String())
	return nil
}

func (c *Controller) checkTransferLocked(to string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: transfer amount must be positive", ErrInvalidAmount)
	}
	recv, ok := c.accounts.Get(to)
	if !ok {
		return ErrUnknownRecipient
	}
	if recv == c.current {
		return ErrSelfTransfer
	}
	if amount.GreaterThan(ledger.Balance(c.current.Movements)) {
		return ErrInsufficientFunds
	}
	return nil
}

// Close deletes the current account when the credentials match it, then
// ends the session.
func (c *Controller) Close(ctx context.Context, username string, pin int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return ErrNotLoggedIn
	}
	if id.Normalize(username) != c.current.Username || pin != c.current.PIN {
		c.log.Warn(ctx, "close rejected", "session_id", c.sessionID, "user", c.current.Username)
		return ErrInvalidCredentials
	}

	c.accounts.Remove(c.current.Username)
	c.log.Info(ctx, "account closed", "session_id", c.sessionID, "user", c.current.Username)
	c.endLocked()
	return nil
}

// ToggleSort flips between stored and ascending-amount order and returns
// the movements in the new order.
func (c *Controller) ToggleSort() ([]model.Movement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil, ErrNotLoggedIn
	}
	c.sorted = !c.sorted
	return ledger.Order(c.current.Movements, c.sorted), nil
}

// View recomputes the display state of the current account.
func (c *Controller) View() (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return View{}, ErrNotLoggedIn
	}
	acct := c.current.Clone()
	return View{
		Welcome:   "Welcome back, " + acct.FirstName(),
		Account:   acct,
		Movements: ledger.Order(acct.Movements, c.sorted),
		Summary:   ledger.Summarize(acct.Movements, acct.InterestRate),
		Sorted:    c.sorted,
		Timer:     c.timer.Label(),
		SessionID: c.sessionID,
		Now:       c.clock.Now(),
	}, nil
}

// Wait blocks until every pending loan has settled.
func (c *Controller) Wait() error {
	return c.loans.Wait()
}

func (c *Controller) endLocked() {
	c.timer.Stop()
	c.current = nil
	c.sorted = false
	c.sessionID = ""
}

func (c *Controller) tickHook(label string) {
	if c.onTick != nil {
		c.onTick(label)
	}
}

// expire runs on the timer goroutine when the countdown reaches zero.
func (c *Controller) expire() {
	c.mu.Lock()
	if c.current == nil || c.timer.Running() {
		// Already logged out, or a newer action restarted the countdown.
		c.mu.Unlock()
		return
	}
	username := c.current.Username
	c.log.Info(context.Background(), "session expired", "session_id", c.sessionID, "user", username)
	c.endLocked()
	c.mu.Unlock()

	if c.onExpire != nil {
		c.onExpire(username)
	}
}
