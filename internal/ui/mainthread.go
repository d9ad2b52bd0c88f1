// Package ui contains the fyne widgets of the SmoothScroll desktop host: the
// scroller display view, its pausable clock and small controls.
package ui

import "fyne.io/fyne/v2"

// Drivers expose one of these depending on the fyne version.
type (
	mainRunner interface{ RunOnMain(func()) }
	mainCaller interface{ CallOnMain(func()) }
)

// RunOnMain schedules f on the GUI goroutine. Without a running app or a
// driver that can schedule, f runs inline.
func RunOnMain(f func()) {
	if f == nil {
		return
	}
	var drv fyne.Driver
	if a := fyne.CurrentApp(); a != nil {
		drv = a.Driver()
	}
	switch d := drv.(type) {
	case mainRunner:
		d.RunOnMain(f)
	case mainCaller:
		d.CallOnMain(f)
	default:
		f()
	}
}
