package scroller

import "time"

// Clock is a monotonic time source in seconds. Values must never decrease.
type Clock interface {
	Now() float64
}

// monotonicClock reads Go's monotonic clock reading, which is immune to
// wall-clock adjustments.
type monotonicClock struct {
	base time.Time
}

func newMonotonicClock() *monotonicClock {
	return &monotonicClock{base: time.Now()}
}

func (c *monotonicClock) Now() float64 {
	return time.Since(c.base).Seconds()
}

// ManualClock is a Clock advanced explicitly by the caller. Hosts with a
// fixed tick rate and tests use it to make motion deterministic.
type ManualClock struct {
	t float64
}

// Now returns the current manual time.
func (c *ManualClock) Now() float64 { return c.t }

// Advance moves the clock forward by d seconds. Negative values are ignored.
func (c *ManualClock) Advance(d float64) {
	if d > 0 {
		c.t += d
	}
}
