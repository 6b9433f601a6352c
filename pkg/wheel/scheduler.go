package wheel

import (
	"sync"
	"time"
)

// DefaultFrameInterval matches a 60Hz display.
const DefaultFrameInterval = time.Second / 60

// Scheduler decouples pointer-move sampling from the display refresh rate.
// Moves stage a pending angle, last write wins, so a burst of moves between
// two frames costs one apply. A ticker consumes the staged angle at most
// once per firing and hands it to the emit callback.
//
// The callback runs on the ticker goroutine. Hosts that mutate
// single-threaded state must forward it onto their own loop; the Bubble Tea
// host does this by sending a program message.
type Scheduler struct {
	mu       sync.Mutex
	pending  float64
	staged   bool
	ticker   *time.Ticker
	done     chan struct{}
	interval time.Duration
	emit     func(angle float64)
}

// NewScheduler creates a detached scheduler firing every interval. An
// interval of zero or less falls back to DefaultFrameInterval.
func NewScheduler(interval time.Duration, emit func(angle float64)) *Scheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Scheduler{interval: interval, emit: emit}
}

// Stage records an angle to apply on the next frame, replacing any angle
// staged earlier in the same frame.
func (s *Scheduler) Stage(angle float64) {
	s.mu.Lock()
	s.pending = angle
	s.staged = true
	s.mu.Unlock()
}

// Attach starts the frame ticker. Attaching an already attached scheduler
// is a no-op.
func (s *Scheduler) Attach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		return
	}
	s.ticker = time.NewTicker(s.interval)
	s.done = make(chan struct{})
	go s.run(s.ticker, s.done)
}

// Detach stops the ticker. It must be called when the hosting control is
// torn down, or the ticker keeps firing after the control is gone.
// Detaching twice, or before Attach, is a safe no-op.
func (s *Scheduler) Detach() {
	s.mu.Lock()
	ticker, done := s.ticker, s.done
	s.ticker = nil
	s.done = nil
	s.mu.Unlock()

	if ticker == nil {
		return
	}
	ticker.Stop()
	close(done)
}

func (s *Scheduler) run(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.flush()
		}
	}
}

// flush consumes the staged angle, if any. A firing with nothing staged is
// a no-op.
func (s *Scheduler) flush() {
	s.mu.Lock()
	if !s.staged {
		s.mu.Unlock()
		return
	}
	angle := s.pending
	s.staged = false
	emit := s.emit
	s.mu.Unlock()

	if emit != nil {
		emit(angle)
	}
}
