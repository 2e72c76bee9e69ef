package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebounceCollapsesBursts(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	defer s.Close()

	var runs atomic.Int32
	trigger := Debounce(s, 3*tick, func() { runs.Add(1) })
	for i := 0; i < 5; i++ {
		trigger()
	}

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, waitFor, tick)
	time.Sleep(6 * tick)
	assert.Equal(t, int32(1), runs.Load())
}

func TestDebounceDiesWithScheduler(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	var runs atomic.Int32
	trigger := Debounce(s, 3*tick, func() { runs.Add(1) })

	trigger()
	s.Close()
	trigger()

	time.Sleep(8 * tick)
	assert.Zero(t, runs.Load())
}

func TestThrottleLeadingEdge(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	defer s.Close()

	var runs atomic.Int32
	trigger := Throttle(s, 5*tick, func() { runs.Add(1) })

	assert.True(t, trigger())
	assert.False(t, trigger())
	assert.False(t, trigger())
	assert.Equal(t, int32(1), runs.Load())

	assert.Eventually(t, trigger, waitFor, tick)
	assert.Equal(t, int32(2), runs.Load())
}

func TestThrottleAfterClose(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	var runs atomic.Int32
	trigger := Throttle(s, tick, func() { runs.Add(1) })
	s.Close()

	assert.False(t, trigger())
	assert.Zero(t, runs.Load())
}
