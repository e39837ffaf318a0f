// Package timer provides the session stopwatch and the rest countdown.
//
// Each running timer owns one goroutine fed by a ticker. Pausing, resetting
// or restarting a timer stops that goroutine before returning.
package timer

import (
	"errors"
	"sync"
	"time"
)

// DefaultInterval is the tick period of both timers.
const DefaultInterval = time.Second

// RestPresets are the rest durations offered by default, in seconds.
var RestPresets = []int{30, 60, 90, 120}

// ErrInvalidDuration is returned when a countdown is started with a
// non-positive duration.
var ErrInvalidDuration = errors.New("countdown duration must be positive")

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type stdTicker struct{ t *time.Ticker }

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()               { s.t.Stop() }

func newStdTicker(d time.Duration) Ticker {
	return stdTicker{t: time.NewTicker(d)}
}

// Option configures a timer.
type Option func(*runner)

// WithInterval overrides the tick period.
func WithInterval(d time.Duration) Option {
	return func(r *runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithTicker replaces the ticker source, mainly for tests.
func WithTicker(fn TickerFunc) Option {
	return func(r *runner) {
		if fn != nil {
			r.newTicker = fn
		}
	}
}

// runner owns the tick goroutine of a single timer. Its mutex only guards
// the goroutine handles; tick callbacks must never call back into runner.
type runner struct {
	interval  time.Duration
	newTicker TickerFunc

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func newRunner(opts []Option) runner {
	r := runner{interval: DefaultInterval, newTicker: newStdTicker}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// start launches the tick goroutine, stopping any previous one first.
// The goroutine exits when tick returns false or halt is called.
func (r *runner) start(tick func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.haltLocked()

	stop := make(chan struct{})
	done := make(chan struct{})
	ticker := r.newTicker(r.interval)
	r.stop, r.done = stop, done

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C():
				if !tick() {
					return
				}
			}
		}
	}()
}

// halt stops the tick goroutine and waits for it to exit.
func (r *runner) halt() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.haltLocked()
}

func (r *runner) haltLocked() {
	if r.stop == nil {
		return
	}
	close(r.stop)
	<-r.done
	r.stop, r.done = nil, nil
}

func (r *runner) running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done == nil {
		return false
	}
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}
