package subtitle

import (
	"sync"
	"time"
)

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay.
//
// Implementations must never run f synchronously inside AfterFunc, even for a
// zero delay: completion callbacks rely on running outside the caller's
// critical section.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ClockScheduler schedules on the wall clock.
type ClockScheduler struct{}

// AfterFunc implements Scheduler using time.AfterFunc.
func (ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	return time.AfterFunc(d, f)
}

// serialScheduler delivers callbacks into the coordinator's critical section.
// A callback that fires after the coordinator closed is dropped.
type serialScheduler struct {
	inner Scheduler
	mu    *sync.Mutex
	alive func() bool // called with mu held
}

func (s *serialScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return s.inner.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.alive() {
			return
		}
		f()
	})
}
