package ui

import (
	"testing"
	"time"
)

type fakeNow struct{ t time.Time }

func (f *fakeNow) now() time.Time          { return f.t }
func (f *fakeNow) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestPausableClockStandsStillWhilePaused(t *testing.T) {
	fn := &fakeNow{t: time.Unix(1000, 0)}
	c := newPausableClockAt(fn.now)

	if !c.Paused() {
		t.Fatal("clock should start paused")
	}
	fn.advance(5 * time.Second)
	if got := c.Now(); got != 0 {
		t.Fatalf("Now() while paused = %v, want 0", got)
	}

	c.Resume()
	fn.advance(2 * time.Second)
	if got := c.Now(); got != 2 {
		t.Fatalf("Now() after 2s running = %v, want 2", got)
	}

	c.Pause()
	fn.advance(10 * time.Second)
	if got := c.Now(); got != 2 {
		t.Fatalf("Now() after pause = %v, want 2", got)
	}

	c.Resume()
	c.Resume() // no-op
	fn.advance(500 * time.Millisecond)
	if got := c.Now(); got != 2.5 {
		t.Fatalf("Now() after resume = %v, want 2.5", got)
	}
}
