package pan

import (
	"sync"
	"time"
)

// Clock provides the wall-clock time the pan loop measures acceleration against.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock returns a ManualClock reading start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Interval is a scheduled repeating callback.
type Interval interface {
	Stop()
}

// Timers schedules repeating callbacks on the host's event loop. Callbacks must
// run on the same loop that delivers key events, never concurrently with them.
type Timers interface {
	Every(d time.Duration, fn func()) Interval
}
