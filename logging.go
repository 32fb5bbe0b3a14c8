package qpgo

import (
	"github.com/comalice/qpgo/internal/extensibility"
	"github.com/rs/zerolog"
)

// WithLogging wraps h so every invocation is logged at debug level with
// its duration and resulting Directive, via the same zerolog logger the
// Framework uses for lifecycle events. Intended for states under active
// development or diagnosis, not for production hot paths — Init/Dispatch
// themselves never log.
func WithLogging(log zerolog.Logger, name string, h Handler) Handler {
	wrapped := extensibility.NewLoggingHandler(log, name, func(hsmAny, eventAny any) any {
		return h(hsmAny.(*HSM), eventAny.(Event))
	})
	return func(hsm *HSM, e Event) Directive {
		return wrapped.Call(hsm, e).(Directive)
	}
}
