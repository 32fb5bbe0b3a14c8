// Package production holds pieces meant for real deployments rather than
// tests: two Observer implementations (a non-blocking channel-backed
// trace sink and a zerolog logger) and a DOT/JSON state-tree visualizer.
package production

import "github.com/comalice/qpgo"

// TraceEntry bundles one dispatch-trace event with its source state name
// for consumption off the framework's own goroutine.
type TraceEntry struct {
	StateName string
	Signal    qpgo.Signal
	Code      qpgo.ReturnCode
}

// ChannelObserver is a qpgo.Observer that forwards OnStateHandlerCalled
// notifications to a Go channel, non-blocking with drop-on-backpressure
// — the same delivery guarantee the teacher's ChannelPublisher gave
// SCXML event publication, now applied to dispatch tracing instead.
type ChannelObserver struct {
	qpgo.NoopObserver
	ch chan<- TraceEntry
}

// NewChannelObserver creates a ChannelObserver forwarding onto ch.
func NewChannelObserver(ch chan<- TraceEntry) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnStateHandlerCalled forwards a TraceEntry, dropping it silently if ch
// is unbuffered/full and nobody is currently receiving.
func (o *ChannelObserver) OnStateHandlerCalled(s *qpgo.State, e qpgo.Event, code qpgo.ReturnCode) {
	select {
	case o.ch <- TraceEntry{StateName: s.String(), Signal: e.Signal, Code: code}:
	default:
	}
}

// Close closes the underlying channel. Call it only after the framework
// that owns this observer has stopped.
func (o *ChannelObserver) Close() {
	close(o.ch)
}
