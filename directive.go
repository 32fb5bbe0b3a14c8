package qpgo

// ReturnCode tags the kind of Directive a Handler returns.
type ReturnCode int

const (
	// Handled means the event was processed and no transition occurs.
	Handled ReturnCode = iota
	// Ignored means the state has no reaction to the event; the
	// dispatcher stops bubbling and the event is dropped.
	Ignored
	// Tran means the handler requests a transition to Directive.Target.
	Tran
	// Super means the handler is not the top state and Directive.Target
	// names its superstate, for the EMPTY-signal ancestor walk and for
	// event bubbling.
	Super
)

// Directive is the value every Handler returns. It is pure data: the
// handler never mutates HSM state itself. Only the dispatcher
// (Init/Dispatch) interprets a Directive and mutates HSM.current — this
// keeps the side effect in one place instead of scattered across every
// handler, unlike the original source's convention of handlers directly
// assigning self.state.
type Directive struct {
	Code   ReturnCode
	Target *State
}

// DirHandled is returned by a handler that processed the event.
func DirHandled() Directive { return Directive{Code: Handled} }

// DirIgnored is returned by a handler with no reaction to the event.
func DirIgnored() Directive { return Directive{Code: Ignored} }

// DirTran requests a transition to target.
func DirTran(target *State) Directive { return Directive{Code: Tran, Target: target} }

// DirSuper reports parent as this state's superstate.
func DirSuper(parent *State) Directive { return Directive{Code: Super, Target: parent} }
