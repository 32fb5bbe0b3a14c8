// Package testutil provides an Observer implementation for asserting on
// dispatch behavior in tests, replacing the teacher's dual-runtime
// RuntimeAdapter (which gave the event-driven and tick-based engines a
// common interface so one test suite could run against both). This
// runtime has one engine, not two, so there is nothing left to adapt
// between; what testers still need is a way to capture what happened
// during a run, which TraceRecorder provides.
package testutil

import "github.com/comalice/qpgo"

// TraceEvent is one recorded Observer notification.
type TraceEvent struct {
	Kind   string // "entry", "exit", "dispatch", "handler"
	State  string
	Signal qpgo.Signal
	Code   qpgo.ReturnCode
}

// TraceRecorder is a qpgo.Observer that records OnHSMDispatchEvent and
// OnStateHandlerCalled notifications in order, for test assertions like
// "S entered before S1" or "no state was entered twice without an
// intervening exit". The other hooks are the embedded no-ops.
type TraceRecorder struct {
	qpgo.NoopObserver
	Events []TraceEvent
}

// NewTraceRecorder returns an empty TraceRecorder.
func NewTraceRecorder() *TraceRecorder {
	return &TraceRecorder{}
}

func (r *TraceRecorder) OnHSMDispatchEvent(e qpgo.Event) {
	r.Events = append(r.Events, TraceEvent{Kind: "dispatch", Signal: e.Signal})
}

func (r *TraceRecorder) OnStateHandlerCalled(s *qpgo.State, e qpgo.Event, code qpgo.ReturnCode) {
	kind := "handler"
	switch e.Signal {
	case qpgo.SigEntry:
		kind = "entry"
	case qpgo.SigExit:
		kind = "exit"
	}
	r.Events = append(r.Events, TraceEvent{Kind: kind, State: s.String(), Signal: e.Signal, Code: code})
}

// Names returns the State field of every recorded event of the given
// kind, in order, e.g. for asserting an exact ENTRY sequence.
func (r *TraceRecorder) Names(kind string) []string {
	var out []string
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e.State)
		}
	}
	return out
}

// Reset clears recorded events without discarding the recorder itself.
func (r *TraceRecorder) Reset() {
	r.Events = r.Events[:0]
}
