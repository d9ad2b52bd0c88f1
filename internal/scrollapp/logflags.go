package scrollapp

import (
	"log"
	"os"
	"sync/atomic"

	ui "github.com/edward-ap/smoothscroll/internal/ui"
)

var traceLogEnabled atomic.Bool

// SetTraceLogEnabled toggles verbose logging of scroller boundaries, wraps and
// frame timing. Call this before creating the App so new scrollers pick it up.
func SetTraceLogEnabled(b bool) {
	traceLogEnabled.Store(b)
	ui.SetTraceLoggingEnabled(b)
}

// traceLogger returns the logger handed to scrollers, or nil when tracing is off.
func traceLogger() *log.Logger {
	if !traceLogEnabled.Load() {
		return nil
	}
	return log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
}
