package ui

import "sync/atomic"

var traceLogEnabled atomic.Bool

// SetTraceLoggingEnabled turns periodic frame logging of scroller views on or off.
func SetTraceLoggingEnabled(enabled bool) {
	traceLogEnabled.Store(enabled)
}

func isTraceLoggingEnabled() bool {
	return traceLogEnabled.Load()
}
