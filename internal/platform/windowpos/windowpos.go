// Package windowpos saves and restores the screen position of a fyne window
// where the native driver exposes it. fyne itself has no position API.
package windowpos

import (
	"time"

	"fyne.io/fyne/v2"
)

// Point is a top-left window corner in screen pixels.
type Point struct {
	X, Y int
}

// Capture reads the current window position. ok is false on platforms
// without native window access.
func Capture(w fyne.Window) (p Point, ok bool) {
	if w == nil {
		return Point{}, false
	}
	x, y, ok := nativePosition(w)
	return Point{X: x, Y: y}, ok
}

// Restore moves w to p. A freshly shown window may not have its native handle
// yet, so Restore retries in the background a few times before giving up.
func Restore(w fyne.Window, p Point) {
	if w == nil {
		return
	}
	if moveNative(w, p.X, p.Y) {
		return
	}
	go func() {
		const attempts = 10
		for i := 0; i < attempts; i++ {
			time.Sleep(150 * time.Millisecond)
			if moveNative(w, p.X, p.Y) {
				return
			}
		}
	}()
}
