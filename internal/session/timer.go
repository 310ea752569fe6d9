package session

import (
	"sync"
	"time"

	"github.com/bankist-dev/bankist/internal/format"
)

// DefaultTimeout is the inactivity timeout in seconds.
const DefaultTimeout = 300

// Timer counts down once per interval and fires its expiry callback when it
// reaches zero. At most one schedule is active at a time: Start and Restart
// cancel the previous one, and ticks from a cancelled schedule are dropped.
//
// Callbacks run outside the timer's lock but may run on the timer's
// goroutine; they must not block.
type Timer struct {
	mu        sync.Mutex
	clock     Clock
	duration  int
	interval  time.Duration
	remaining int
	running   bool
	gen       uint64
	ticker    Ticker
	stop      chan struct{}

	onTick   func(label string)
	onExpire func()
}

// TimerOption configures a Timer.
type TimerOption func(*Timer)

// WithTimerClock sets the clock used for scheduling.
func WithTimerClock(c Clock) TimerOption {
	return func(t *Timer) { t.clock = c }
}

// WithInterval sets the tick period (one second by default).
func WithInterval(d time.Duration) TimerOption {
	return func(t *Timer) { t.interval = d }
}

// OnTick registers the callback receiving each mm:ss label.
func OnTick(fn func(label string)) TimerOption {
	return func(t *Timer) { t.onTick = fn }
}

// OnExpire registers the callback fired once when the countdown reaches zero.
func OnExpire(fn func()) TimerOption {
	return func(t *Timer) { t.onExpire = fn }
}

// NewTimer creates an idle timer counting down from seconds.
func NewTimer(seconds int, opts ...TimerOption) *Timer {
	if seconds <= 0 {
		seconds = DefaultTimeout
	}
	t := &Timer{
		clock:    SystemClock(),
		duration: seconds,
		interval: time.Second,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Start begins a fresh countdown, cancelling any active one, and emits the
// full duration immediately.
func (t *Timer) Start() {
	t.mu.Lock()
	t.stopLocked()
	t.gen++
	gen := t.gen
	t.remaining = t.duration
	t.running = true
	ticker := t.clock.NewTicker(t.interval)
	stop := make(chan struct{})
	t.ticker, t.stop = ticker, stop
	label := format.Clock(t.remaining)
	t.mu.Unlock()

	t.emit(label)
	go t.loop(gen, ticker, stop)
}

// Restart is Start; it exists to name the "extend the session" intent.
func (t *Timer) Restart() {
	t.Start()
}

// Stop cancels the countdown without firing expiry.
func (t *Timer) Stop() {
	t.mu.Lock()
	t.stopLocked()
	t.mu.Unlock()
}

// Tick advances the active countdown by one step. Ticks while idle are ignored.
func (t *Timer) Tick() {
	t.tick(0)
}

// Remaining returns the seconds currently shown.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Running reports whether a countdown is active.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Label returns the remaining time as mm:ss.
func (t *Timer) Label() string {
	return format.Clock(t.Remaining())
}

func (t *Timer) loop(gen uint64, ticker Ticker, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			if !t.tick(gen) {
				return
			}
		}
	}
}

// tick applies one step for schedule gen (0 means the current one) and
// reports whether the countdown is still running afterwards.
func (t *Timer) tick(gen uint64) bool {
	t.mu.Lock()
	if !t.running || (gen != 0 && gen != t.gen) {
		t.mu.Unlock()
		return false
	}
	t.remaining--
	label := format.Clock(t.remaining)
	expired := t.remaining <= 0
	if expired {
		t.stopLocked()
	}
	t.mu.Unlock()

	t.emit(label)
	if expired && t.onExpire != nil {
		t.onExpire()
	}
	return !expired
}

func (t *Timer) stopLocked() {
	if t.ticker != nil {
		t.ticker.Stop()
		close(t.stop)
		t.ticker, t.stop = nil, nil
	}
	t.running = false
}

func (t *Timer) emit(label string) {
	if t.onTick != nil {
		t.onTick(label)
	}
}
