// Package timer owns the delayed callbacks a widget schedules (fade-outs,
// ripple cleanup, auto-advance) so they can all be cancelled when the widget
// is torn down.
package timer

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scheduler owns every callback scheduled through it.
type Scheduler struct {
	id string

	mu      sync.Mutex
	closed  bool
	pending map[*Handle]struct{}
}

// Handle identifies one scheduled callback.
type Handle struct {
	owner *Scheduler
	timer *time.Timer
}

// NewScheduler creates an open scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		id:      uuid.NewString(),
		pending: make(map[*Handle]struct{}),
	}
}

// ID returns the scheduler's unique id, used to correlate log entries.
func (s *Scheduler) ID() string {
	return s.id
}

// After runs fn once d has elapsed unless the handle or the scheduler is
// cancelled first. On a closed scheduler the returned handle is inert.
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	h := &Handle{owner: s}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return h
	}

	s.pending[h] = struct{}{}
	h.timer = time.AfterFunc(d, func() {
		if s.claim(h) {
			fn()
		}
	})
	return h
}

// claim removes h from the pending set, reporting whether it was still due.
func (s *Scheduler) claim(h *Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[h]; !ok {
		return false
	}
	delete(s.pending, h)
	return true
}

// Pending returns the number of callbacks that have not fired or been cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Closed reports whether Close has been called.
func (s *Scheduler) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close cancels every pending callback. Later calls to After are no-ops.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for h := range s.pending {
		h.timer.Stop()
	}
	s.pending = make(map[*Handle]struct{})
}

// Cancel stops the callback. It returns false if the callback already ran,
// was already cancelled, or was never scheduled.
func (h *Handle) Cancel() bool {
	if h == nil || h.owner == nil {
		return false
	}
	if !h.owner.claim(h) {
		return false
	}
	h.timer.Stop()
	return true
}
