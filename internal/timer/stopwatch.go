package timer

import "sync"

// Stopwatch counts whole elapsed seconds while running.
type Stopwatch struct {
	r runner

	mu      sync.Mutex
	elapsed int
}

// NewStopwatch returns a stopped stopwatch at zero.
func NewStopwatch(opts ...Option) *Stopwatch {
	return &Stopwatch{r: newRunner(opts)}
}

// Start begins counting from the current value. Starting a running
// stopwatch does nothing.
func (s *Stopwatch) Start() {
	if s.r.running() {
		return
	}
	s.r.start(s.tick)
}

func (s *Stopwatch) tick() bool {
	s.mu.Lock()
	s.elapsed++
	s.mu.Unlock()
	return true
}

// Pause stops counting and keeps the current value.
func (s *Stopwatch) Pause() {
	s.r.halt()
}

// Reset stops counting and sets the value back to zero.
func (s *Stopwatch) Reset() {
	s.r.halt()
	s.mu.Lock()
	s.elapsed = 0
	s.mu.Unlock()
}

// Elapsed returns the counted seconds.
func (s *Stopwatch) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Running reports whether the stopwatch is counting.
func (s *Stopwatch) Running() bool {
	return s.r.running()
}
