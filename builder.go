package qpgo

// Builder collects named *State nodes so a handler can reference a
// sibling or child state by name before that state's own handler has
// been written — the common shape of a hand-drawn statechart, where
// transitions point at states defined later in the same file.
//
// This is the two-phase NewState/Bind pattern from state.go, with a name
// table added so trees with many states (e.g. the PSiCC2 Fig 2.11
// conformance topology, which has eight mutually-referencing states)
// don't need a block of manually-declared *State variables up front.
type Builder struct {
	states map[string]*State
	order  []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make(map[string]*State)}
}

// State returns the named state, creating it unbound if this is the
// first reference.
func (b *Builder) State(name string) *State {
	if s, ok := b.states[name]; ok {
		return s
	}
	s := NewState(name)
	b.states[name] = s
	b.order = append(b.order, name)
	return s
}

// Bind attaches h to the named state, creating it first if necessary,
// and returns the state.
func (b *Builder) Bind(name string, h Handler) *State {
	return b.State(name).Bind(h)
}

// Names returns every state name declared so far, in first-reference
// order.
func (b *Builder) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}
