package qpgo

import "fmt"

// Signal is a small unsigned integer that, together with a Payload,
// identifies an Event. Signal values are assigned by a SignalRegistry and
// are dense and stable for the registry's lifetime.
type Signal uint32

// Reserved signals. Every SignalRegistry registers these, in this order,
// before any application signal, so their ids are always 0..5 regardless
// of which registry instance assigned them.
const (
	SigEmpty Signal = iota
	SigEntry
	SigExit
	SigInit
	SigSIGINT
	SigSIGTERM

	firstUserSignal
)

var reservedSignalNames = [...]string{
	SigEmpty:    "EMPTY",
	SigEntry:    "ENTRY",
	SigExit:     "EXIT",
	SigInit:     "INIT",
	SigSIGINT:   "SIGINT",
	SigSIGTERM:  "SIGTERM",
}

// SignalRegistry interns signal names to dense, stable small integers.
//
// It is thread-unsafe by design: per spec.md §4.3, all registration must
// happen before the scheduler is handed off to a concurrent environment.
// In this single-threaded cooperative runtime that means "before Run or
// RunForever is first called from a second goroutine" — which the core
// never does on its own.
//
// A SignalRegistry is owned by exactly one *Framework and passed
// explicitly rather than kept as package-level state (see spec.md §9's
// design note against singleton registries).
type SignalRegistry struct {
	ids   map[string]Signal
	names []string
}

// NewSignalRegistry creates a registry with the reserved signals
// (EMPTY, ENTRY, EXIT, INIT, SIGINT, SIGTERM) pre-registered at ids 0-5.
func NewSignalRegistry() *SignalRegistry {
	r := &SignalRegistry{
		ids:   make(map[string]Signal, 16),
		names: make([]string, 0, 16),
	}
	for _, name := range reservedSignalNames {
		r.Register(name)
	}
	return r
}

// Register interns name, returning its Signal id. Re-registering an
// existing name is idempotent and returns the previously assigned id.
func (r *SignalRegistry) Register(name string) Signal {
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := Signal(len(r.names))
	r.ids[name] = id
	r.names = append(r.names, name)
	return id
}

// Exists reports whether name has been registered.
func (r *SignalRegistry) Exists(name string) bool {
	_, ok := r.ids[name]
	return ok
}

// NameOf returns the name registered for id, or an error if id is unknown.
func (r *SignalRegistry) NameOf(id Signal) (string, error) {
	if int(id) < 0 || int(id) >= len(r.names) {
		return "", fmt.Errorf("qpgo: signal id %d not registered", id)
	}
	return r.names[id], nil
}

// Len returns the number of registered signals, reserved and user-defined.
func (r *SignalRegistry) Len() int {
	return len(r.names)
}
