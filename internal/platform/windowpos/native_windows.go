//go:build windows

package windowpos

import (
	"sync"
	"syscall"
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

var (
	user32            = syscall.NewLazyDLL("user32.dll")
	procGetWindowRect = user32.NewProc("GetWindowRect")
	procSetWindowPos  = user32.NewProc("SetWindowPos")
)

const (
	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

type rect struct {
	Left, Top, Right, Bottom int32
}

func nativePosition(w fyne.Window) (x, y int, ok bool) {
	ok = onHWND(w, func(hwnd uintptr) bool {
		var r rect
		ret, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
		if ret == 0 {
			logCallError("GetWindowRect", err)
			return false
		}
		x, y = int(r.Left), int(r.Top)
		return true
	})
	return x, y, ok
}

func moveNative(w fyne.Window, x, y int) bool {
	return onHWND(w, func(hwnd uintptr) bool {
		ret, _, err := procSetWindowPos.Call(hwnd, 0, uintptr(int32(x)), uintptr(int32(y)), 0, 0,
			swpNoSize|swpNoZOrder|swpNoActivate)
		if ret == 0 {
			logCallError("SetWindowPos", err)
			return false
		}
		return true
	})
}

func logCallError(call string, err error) {
	if err != syscall.Errno(0) {
		fyne.LogError(call+" failed", err)
	}
}

// onHWND runs fn with the native handle on the GUI thread and waits for it.
func onHWND(w fyne.Window, fn func(hwnd uintptr) bool) bool {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return false
	}
	var (
		done   sync.WaitGroup
		result bool
	)
	done.Add(1)
	nw.RunNative(func(ctx any) {
		defer done.Done()
		if wc, ok := ctx.(driver.WindowsWindowContext); ok && wc.HWND != 0 {
			result = fn(wc.HWND)
		}
	})
	done.Wait()
	return result
}
