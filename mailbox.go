package qpgo

// Mailbox is an ActiveObject's event queue: a plain slice-backed deque.
// It is never accessed concurrently — per spec.md §5, all mailbox
// operations happen on the single event-loop goroutine — so it carries
// no lock, unlike the teacher's map-based stores that guarded shared
// state with a mutex.
type Mailbox struct {
	events []Event
}

// NewMailbox returns an empty Mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// PostFIFO appends e to the back of the queue: normal first-in-first-out
// delivery order.
func (m *Mailbox) PostFIFO(e Event) {
	m.events = append(m.events, e)
}

// PostLIFO inserts e at the front of the queue, for the rare case an
// event must preempt everything already queued (mirrors farc's
// Ahsm.postLIFO, used e.g. to deliver a high-priority interrupt-like
// event ahead of routine traffic).
func (m *Mailbox) PostLIFO(e Event) {
	m.events = append(m.events, Event{})
	copy(m.events[1:], m.events)
	m.events[0] = e
}

// Pop removes and returns the front event. ok is false if the mailbox is
// empty.
func (m *Mailbox) Pop() (e Event, ok bool) {
	if len(m.events) == 0 {
		return Event{}, false
	}
	e = m.events[0]
	m.events = m.events[1:]
	return e, true
}

// Len reports the number of queued events.
func (m *Mailbox) Len() int {
	return len(m.events)
}
