package session

import (
	"sync"
	"time"
)

// fakeClock hands out tickers and timers that only fire when the test says so.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
	afters  []chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2022, 10, 26, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *fakeClock) NewTicker(time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{c: make(chan time.Time)}
	f.tickers = append(f.tickers, t)
	return t
}

func (f *fakeClock) After(time.Duration) <-chan time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan time.Time, 1)
	f.afters = append(f.afters, ch)
	return ch
}

// FireAfters releases every pending After channel and returns how many fired.
func (f *fakeClock) FireAfters() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.afters {
		ch <- f.now
	}
	n := len(f.afters)
	f.afters = nil
	return n
}

func (f *fakeClock) activeTickers() []*fakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*fakeTicker
	for _, t := range f.tickers {
		if !t.Stopped() {
			out = append(out, t)
		}
	}
	return out
}

func (f *fakeClock) lastTicker() *fakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tickers[len(f.tickers)-1]
}

type fakeTicker struct {
	c       chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.c }

func (t *fakeTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (t *fakeTicker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// labels records emitted timer labels.
type labels struct {
	mu  sync.Mutex
	all []string
}

func (l *labels) add(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.all = append(l.all, s)
}

func (l *labels) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.all))
	copy(out, l.all)
	return out
}

func (l *labels) last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.all) == 0 {
		return ""
	}
	return l.all[len(l.all)-1]
}
