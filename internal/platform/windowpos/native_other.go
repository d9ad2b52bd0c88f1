//go:build !windows

package windowpos

import "fyne.io/fyne/v2"

func nativePosition(fyne.Window) (int, int, bool) { return 0, 0, false }

func moveNative(fyne.Window, int, int) bool { return false }
