// Package subtitletest provides a virtual clock and recording collaborators
// for testing code built on the subtitle coordinator.
package subtitletest

import (
	"sync"
	"time"

	"navtitle/internal/subtitle"
)

// maxFlushSteps bounds Flush so a self-rescheduling callback cannot hang a test.
const maxFlushSteps = 10000

// ManualScheduler is a subtitle.Scheduler driven by a virtual clock. Callbacks
// only run inside Advance or Flush, on the calling goroutine, in due-time
// order (ties in scheduling order).
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	at      time.Duration
	seq     uint64
	f       func()
	stopped bool
	fired   bool
}

// NewManualScheduler creates a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements subtitle.Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) subtitle.Timer {
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTimer{s: s, at: s.now + d, seq: s.seq, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Now returns the virtual time elapsed since creation.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of timers that have neither fired nor stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every callback that comes due,
// including ones scheduled by callbacks during the advance.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		t := s.next(target)
		if t == nil {
			break
		}
		t.f()
	}

	s.mu.Lock()
	if s.now < target {
		s.now = target
	}
	s.mu.Unlock()
}

// Flush runs callbacks until none are pending, advancing the clock to each
// due time. It returns the number of callbacks run.
func (s *ManualScheduler) Flush() int {
	n := 0
	for ; n < maxFlushSteps; n++ {
		t := s.next(-1)
		if t == nil {
			break
		}
		t.f()
	}
	return n
}

// next pops the earliest due timer at or before target (any when target < 0)
// and moves the clock to it.
func (s *ManualScheduler) next(target time.Duration) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	var best *manualTimer
	live := s.timers[:0]
	for _, t := range s.timers {
		if t.stopped || t.fired {
			continue
		}
		live = append(live, t)
		if target >= 0 && t.at > target {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	s.timers = live

	if best == nil {
		return nil
	}
	best.fired = true
	if best.at > s.now {
		s.now = best.at
	}
	return best
}
