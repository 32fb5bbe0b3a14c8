// Package extensibility holds optional wrappers around the core runtime:
// logging instrumentation and the channel bridge that lets another
// goroutine inject events safely.
package extensibility

import (
	"time"

	"github.com/rs/zerolog"
)

// HandlerFunc mirrors qpgo.Handler's shape without importing the root
// package (avoiding an import cycle): it takes an opaque HSM and Event
// and returns an opaque Directive, both as `any`, and the root package's
// WithLogging wrapper does the real typed call.
type HandlerFunc func(hsm any, event any) any

// LoggingHandler wraps a state Handler with before/after timing logs,
// replacing the teacher's DefaultActionRunner/LoggingActionRunner pair
// (which logged ActionRunner.Run calls through the stdlib log package).
// This version logs structured fields through zerolog instead, and wraps
// a state handler invocation rather than a standalone action.
type LoggingHandler struct {
	Log   zerolog.Logger
	Name  string
	Inner HandlerFunc
}

// NewLoggingHandler wraps inner with logging under the given state name.
func NewLoggingHandler(log zerolog.Logger, name string, inner HandlerFunc) *LoggingHandler {
	return &LoggingHandler{Log: log, Name: name, Inner: inner}
}

// Call invokes the wrapped handler, logging its duration and result.
func (h *LoggingHandler) Call(hsm any, event any) any {
	start := time.Now()
	result := h.Inner(hsm, event)
	h.Log.Debug().
		Str("state", h.Name).
		Dur("took", time.Since(start)).
		Interface("result", result).
		Msg("handler invoked")
	return result
}
