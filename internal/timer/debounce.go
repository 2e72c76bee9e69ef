package timer

import (
	"sync"
	"time"
)

// Debounce returns a trigger that runs fn once d has passed without another
// trigger. The pending run is owned by s.
func Debounce(s *Scheduler, d time.Duration, fn func()) func() {
	var (
		mu      sync.Mutex
		current *Handle
	)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		current.Cancel()
		current = s.After(d, fn)
	}
}

// Throttle returns a trigger that runs fn immediately and then ignores
// triggers until d has elapsed. The trigger reports whether fn ran. Once s is
// closed the window never reopens.
func Throttle(s *Scheduler, d time.Duration, fn func()) func() bool {
	var (
		mu     sync.Mutex
		closed bool
	)
	reopen := func() {
		mu.Lock()
		closed = false
		mu.Unlock()
	}
	return func() bool {
		mu.Lock()
		if closed || s.Closed() {
			mu.Unlock()
			return false
		}
		closed = true
		mu.Unlock()

		s.After(d, reopen)
		fn()
		return true
	}
}
