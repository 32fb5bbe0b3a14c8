package qpgo

import (
	"github.com/comalice/qpgo/internal/primitives"
	"github.com/google/uuid"
)

// Context is an active object's extended-state store: a small typed
// key-value map for data handlers need beyond which state is current.
type Context = primitives.Context

// NewContext returns an empty Context.
func NewContext() *Context { return primitives.NewContext() }

// ActiveObject (AO) is an HSM augmented with a scheduling priority and
// its own mailbox, the unit the Framework schedules. Lower Priority
// values are scheduled first (spec.md §4.5); priorities must be unique
// within a Framework.
//
// Ported from original_source/farc/Ahsm.py's Ahsm, which layers a
// priority and a deque onto an Hsm the same way.
type ActiveObject struct {
	*HSM

	// Name identifies the AO's class/role for diagnostics (e.g. "Philo",
	// "Table"); it need not be unique.
	Name string
	// Priority is this AO's scheduling priority; must be unique within
	// the Framework it is registered with.
	Priority int
	// InstanceID is a random per-instance correlation id for structured
	// logs (production.ZerologObserver), stamped at construction. Grounded in
	// the retrieval pack's zefrenchwan-perspectives direct dependency on
	// google/uuid.
	InstanceID uuid.UUID

	// Ext holds the AO's extended state: data its handlers need beyond
	// the current state, e.g. a countdown's remaining ticks.
	Ext *Context

	mailbox *Mailbox
}

// NewActiveObject creates an AO named name, at priority, whose HSM drills
// into initial on Init. The AO is not scheduled until it is registered
// with a Framework (Framework.Add).
func NewActiveObject(name string, priority int, initial *State) *ActiveObject {
	return &ActiveObject{
		HSM:        NewHSM(initial),
		Name:       name,
		Priority:   priority,
		InstanceID: uuid.New(),
		Ext:        NewContext(),
		mailbox:    NewMailbox(),
	}
}

// PostFIFO queues e for normal in-order delivery to this AO.
func (ao *ActiveObject) PostFIFO(e Event) {
	ao.mailbox.PostFIFO(e)
}

// PostLIFO queues e ahead of everything already queued.
func (ao *ActiveObject) PostLIFO(e Event) {
	ao.mailbox.PostLIFO(e)
}

// HasMessages reports whether this AO's mailbox is non-empty.
func (ao *ActiveObject) HasMessages() bool {
	return ao.mailbox.Len() > 0
}

// popMessage removes and returns the next queued event, for use by the
// Framework's run-to-completion loop only.
func (ao *ActiveObject) popMessage() (Event, bool) {
	return ao.mailbox.Pop()
}
