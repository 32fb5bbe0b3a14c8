package qpgo

// HSM is a hierarchical state machine: a cursor over a tree of *State
// nodes, dispatched per Init/Dispatch in dispatcher.go.
//
// Every HSM has its own top state — the root of the tree, entered
// implicitly and never exited — so that two HSM instances sharing a
// Handler graph still have independent identity (no shared mutable
// top-level state across instances, matching Event.py/Hsm.py's
// per-instance `self.state`).
type HSM struct {
	top     *State
	initial *State
	current *State

	// Observer, if non-nil, is notified of ENTRY/EXIT/transition activity.
	// See observer.go.
	Observer Observer
}

// NewHSM creates an HSM whose initial transition target is initial.
// top's handler ignores every signal except SIGINT/SIGTERM (handled,
// consumed without a transition), mirroring
// original_source/farc/Hsm.py's Hsm.top.
func NewHSM(initial *State) *HSM {
	top := NewState("top")
	top.Bind(func(h *HSM, e Event) Directive {
		switch e.Signal {
		case SigSIGINT, SigSIGTERM:
			return DirHandled()
		default:
			return DirIgnored()
		}
	})
	h := &HSM{top: top, initial: initial}
	h.current = top
	return h
}

// Top returns the HSM's root state.
func (h *HSM) Top() *State { return h.top }

// Current returns the HSM's current leaf state. Only meaningful after
// Init has run.
func (h *HSM) Current() *State { return h.current }

func (h *HSM) observer() Observer {
	if h.Observer == nil {
		return noopObserver{}
	}
	return h.Observer
}
