package timer

import "sync"

// Countdown ticks a rest period down to zero and stops itself there.
type Countdown struct {
	r runner

	mu        sync.Mutex
	remaining int
}

// NewCountdown returns a stopped countdown at zero.
func NewCountdown(opts ...Option) *Countdown {
	return &Countdown{r: newRunner(opts)}
}

// Start (re)starts the countdown from seconds.
func (c *Countdown) Start(seconds int) error {
	if seconds <= 0 {
		return ErrInvalidDuration
	}
	c.r.halt()
	c.mu.Lock()
	c.remaining = seconds
	c.mu.Unlock()
	c.r.start(c.tick)
	return nil
}

func (c *Countdown) tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining > 0
}

// Pause stops ticking and keeps the remaining time.
func (c *Countdown) Pause() {
	c.r.halt()
}

// Resume continues a paused countdown. It does nothing once the countdown
// has reached zero or while it is already running.
func (c *Countdown) Resume() {
	if c.r.running() || c.Remaining() == 0 {
		return
	}
	c.r.start(c.tick)
}

// Reset stops ticking and clears the remaining time.
func (c *Countdown) Reset() {
	c.r.halt()
	c.mu.Lock()
	c.remaining = 0
	c.mu.Unlock()
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Running reports whether the countdown is ticking.
func (c *Countdown) Running() bool {
	return c.r.running()
}
