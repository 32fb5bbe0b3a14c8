package qpgo

import "errors"

// Errors returned by Init/Dispatch. All of them indicate a programming
// error in a Handler (a bad Directive), not a runtime/environmental
// failure — they are not expected to be handled, only logged and fixed.
var (
	// ErrBadInitReturn is returned when the initial transition handler
	// does not return DirTran.
	ErrBadInitReturn = errors.New("qpgo: initial transition handler must return DirTran")
	// ErrBadSuperReturn is returned when a handler invoked with the
	// EMPTY signal (the ancestor walk) does not return DirSuper.
	ErrBadSuperReturn = errors.New("qpgo: handler invoked with EMPTY must return DirSuper")
	// ErrBadExitReturn is returned when an EXIT handler returns anything
	// other than DirHandled or DirSuper.
	ErrBadExitReturn = errors.New("qpgo: EXIT handler must return DirHandled or DirSuper")
	// ErrBadEntryReturn is returned when an ENTRY handler returns
	// anything other than DirHandled.
	ErrBadEntryReturn = errors.New("qpgo: ENTRY handler must return DirHandled")
	// ErrNestingTooDeep is returned when a state tree's initial-transition
	// drill exceeds maxNestDepth levels, almost certainly a cycle.
	ErrNestingTooDeep = errors.New("qpgo: state nesting exceeds maximum depth")
	// ErrDuplicatePriority is returned by Framework.Add when an
	// ActiveObject's priority is already taken.
	ErrDuplicatePriority = errors.New("qpgo: active object priority already registered")
	// ErrUnknownSignal names an unregistered signal. No function in this
	// package returns it: PostByName matches AO names, and Subscribe
	// registers names it has not seen.
	ErrUnknownSignal = errors.New("qpgo: unknown signal name")

	errNotManualClock = errors.New("qpgo: Framework.Advance requires a *ManualClock")
)
