//go:build !windows

package windowpos

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestCaptureUnsupported(t *testing.T) {
	if _, ok := Capture(nil); ok {
		t.Fatal("Capture(nil) reported a position")
	}
	a := test.NewTempApp(t)
	w := a.NewWindow("pos")
	defer w.Close()
	if p, ok := Capture(w); ok || p != (Point{}) {
		t.Fatalf("Capture = %v, %v; want zero, false", p, ok)
	}
	// must not block or panic
	Restore(w, Point{X: 10, Y: 20})
	Restore(nil, Point{})
}
