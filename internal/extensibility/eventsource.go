package extensibility

// BridgedEvent is a (signal, value) pair crossing from an external
// goroutine into the framework's event-loop goroutine. It mirrors
// qpgo.Event by value rather than importing the root package, so this
// package stays a leaf extensibility never needs qpgo to depend back on.
type BridgedEvent struct {
	Signal uint32
	Value  any
}

// ChannelBridge is the one sanctioned way to inject events from another
// goroutine into a single-threaded Framework: the producer goroutine
// calls Send, and Framework.RunForever receives from Events (the same
// channel) for each registered qpgo.Bridge and posts to the target AO's
// mailbox from its own goroutine, so no mailbox is ever touched directly
// from a foreign one.
//
// Adapted from the teacher's ChannelEventSource, which played the
// equivalent role for the old engine's EventSource interface. The
// teacher's TimerEventSource sibling is dropped: this runtime's own
// Framework.PostEvery already covers periodic delivery without a second
// goroutine and ticker to manage.
type ChannelBridge struct {
	ch chan BridgedEvent
}

// NewChannelBridge creates a bridge backed by a channel of the given
// buffer size. A size of 0 makes Send block until the framework loop is
// ready to receive, which is rarely what's wanted; a small buffer (e.g.
// 16) lets producers make progress independently of the loop's cadence.
func NewChannelBridge(bufferSize int) *ChannelBridge {
	return &ChannelBridge{ch: make(chan BridgedEvent, bufferSize)}
}

// Send delivers e from the calling (external) goroutine. It never blocks
// the framework loop's own goroutine.
func (b *ChannelBridge) Send(e BridgedEvent) {
	b.ch <- e
}

// Events returns the receive-only channel the framework loop drains.
func (b *ChannelBridge) Events() <-chan BridgedEvent {
	return b.ch
}
