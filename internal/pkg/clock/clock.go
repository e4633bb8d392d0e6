package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System reads the wall clock truncated to microseconds, the precision
// Postgres keeps for timestamptz, so values survive a database round trip.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().Truncate(time.Microsecond)
}

// FixedClock returns the same instant until it is advanced.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func Fixed(t time.Time) *FixedClock {
	return &FixedClock{now: t}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
