package ui

import (
	"sync"
	"time"
)

// PausableClock is a monotonic scroller clock that stands still while paused,
// so a resumed scroller continues where it stopped instead of jumping. It
// starts paused.
type PausableClock struct {
	mu       sync.Mutex
	now      func() time.Time
	base     time.Time
	pausedAt time.Time
	paused   bool
	idle     time.Duration // total time spent paused
}

// NewPausableClock returns a paused clock reading zero.
func NewPausableClock() *PausableClock {
	return newPausableClockAt(time.Now)
}

func newPausableClockAt(now func() time.Time) *PausableClock {
	t := now()
	return &PausableClock{now: now, base: t, pausedAt: t, paused: true}
}

// Now returns the running time in seconds.
func (c *PausableClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	ref := c.now()
	if c.paused {
		ref = c.pausedAt
	}
	return (ref.Sub(c.base) - c.idle).Seconds()
}

// Pause freezes the clock.
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.now()
}

// Resume lets the clock run again.
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.paused = false
	c.idle += c.now().Sub(c.pausedAt)
}

// Paused reports whether the clock is frozen.
func (c *PausableClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
