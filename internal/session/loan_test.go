package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLoan(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.ctl.Login(ctx, "jd", 2222))
	h.ctl.Timer().Tick()

	task, err := h.ctl.RequestLoan(ctx, dec("1000"))
	require.NoError(t, err)
	assert.Equal(t, "jd", task.Username)
	assert.True(t, task.Amount.Equal(dec("1000")))

	// Nothing is credited until the processing delay elapses.
	assert.Len(t, h.account(t, "jd").Movements, 8)
	assert.Equal(t, 299, h.ctl.Timer().Remaining())

	h.clk.Advance(2500 * time.Millisecond)
	require.Equal(t, 1, h.clk.FireAfters())
	require.NoError(t, task.Wait(ctx))

	movs := h.account(t, "jd").Movements
	require.Len(t, movs, 9)
	assert.True(t, movs[8].Amount.Equal(dec("1000")))
	assert.True(t, movs[8].Date.Equal(h.clk.Now()))
	assert.Equal(t, 300, h.ctl.Timer().Remaining(), "credit restarts the timer")
	assert.NoError(t, h.ctl.Wait())
}

func TestRequestLoan_FloorsAmount(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.ctl.Login(ctx, "jd", 2222))

	task, err := h.ctl.RequestLoan(ctx, dec("1000.99"))
	require.NoError(t, err)
	assert.True(t, task.Amount.Equal(dec("1000")))

	h.clk.FireAfters()
	require.NoError(t, task.Wait(ctx))
}

func TestRequestLoan_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   error
	}{
		{"below one unit", "0.99", ErrInvalidAmount},
		{"zero", "0", ErrInvalidAmount},
		{"negative", "-100", ErrInvalidAmount},
		// Largest jd movement is 8500, so anything above 85000 is declined.
		{"no large enough deposit", "85001", ErrLoanDeclined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			ctx := context.Background()
			require.NoError(t, h.ctl.Login(ctx, "jd", 2222))

			task, err := h.ctl.RequestLoan(ctx, dec(tt.amount))
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, task)
			assert.Equal(t, 0, h.clk.FireAfters(), "no deferred credit scheduled")
		})
	}
}

func TestRequestLoan_BoundaryApproved(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.ctl.Login(ctx, "jd", 2222))

	task, err := h.ctl.RequestLoan(ctx, dec("85000"))
	require.NoError(t, err)
	h.clk.FireAfters()
	require.NoError(t, task.Wait(ctx))
}

func TestRequestLoan_Cancelled(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.ctl.Login(context.Background(), "jd", 2222))

	ctx, cancel := context.WithCancel(context.Background())
	task, err := h.ctl.RequestLoan(ctx, dec("500"))
	require.NoError(t, err)

	cancel()
	<-task.Done()
	assert.ErrorIs(t, task.Err(), context.Canceled)

	h.clk.FireAfters()
	require.NoError(t, h.ctl.Wait())
	assert.Len(t, h.account(t, "jd").Movements, 8)
}

func TestRequestLoan_CreditsRequesterAfterLogout(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.ctl.Login(ctx, "jd", 2222))

	task, err := h.ctl.RequestLoan(ctx, dec("100"))
	require.NoError(t, err)

	require.NoError(t, h.ctl.Login(ctx, "am", 1111))
	h.ctl.Timer().Tick()

	h.clk.FireAfters()
	require.NoError(t, task.Wait(ctx))

	assert.Len(t, h.account(t, "jd").Movements, 9)
	assert.Len(t, h.account(t, "am").Movements, 8)
	assert.Equal(t, 299, h.ctl.Timer().Remaining(), "other user's timer untouched")
}

func TestRequestLoan_AccountClosedBeforeCredit(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.ctl.Login(ctx, "jd", 2222))

	task, err := h.ctl.RequestLoan(ctx, dec("100"))
	require.NoError(t, err)
	require.NoError(t, h.ctl.Close(ctx, "jd", 2222))

	h.clk.FireAfters()
	assert.ErrorIs(t, task.Wait(ctx), ErrAccountClosed)
}

func TestLoanTask_ErrBeforeDone(t *testing.T) {
	task := &LoanTask{done: make(chan struct{})}
	assert.NoError(t, task.Err())

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, task.Wait(ctx), context.DeadlineExceeded)
}
