package qpgo

// Handler reacts to an Event delivered to an HSM while it is in State s
// and returns a Directive telling the dispatcher what to do next.
type Handler func(h *HSM, e Event) Directive

// State is a node in a state tree, identified by pointer: two *State
// values are the same state iff they are the same pointer. Go function
// values are not comparable, so — unlike the original source, which uses
// bound-method identity as state identity — each state's behavior is
// wrapped in a named, addressable node.
//
// States are built in two phases (NewState then Bind) so that sibling and
// parent states can reference each other's *State before every handler
// closure has been written out, matching how hierarchical trees are
// naturally written top-down with forward references to child states.
type State struct {
	Name    string
	handler Handler
}

// NewState allocates a named, as-yet-unbound state. Call Bind before the
// state is used in Init/Dispatch.
func NewState(name string) *State {
	return &State{Name: name}
}

// Bind attaches h as s's handler. Calling it again replaces the previous
// handler; nothing detects a second Bind.
func (s *State) Bind(h Handler) *State {
	s.handler = h
	return s
}

// NewBoundState is a convenience for leaf/simple states that have no
// forward-reference need: NewState(name).Bind(h).
func NewBoundState(name string, h Handler) *State {
	return NewState(name).Bind(h)
}

func (s *State) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.Name
}
