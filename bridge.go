package qpgo

import (
	"reflect"

	"github.com/comalice/qpgo/internal/extensibility"
)

// Bridge pairs a ChannelBridge with the ActiveObject its events should
// be delivered to. Register one with Framework.AddBridge so RunForever
// drains it on its own goroutine — the only safe way to get events from
// another goroutine into an AO's mailbox (see spec.md §5).
type Bridge struct {
	channel *extensibility.ChannelBridge
	target  *ActiveObject
}

// NewBridge creates a Bridge of the given buffer size, delivering to
// target.
func NewBridge(bufferSize int, target *ActiveObject) *Bridge {
	return &Bridge{channel: extensibility.NewChannelBridge(bufferSize), target: target}
}

// Send queues e for target from any goroutine.
func (b *Bridge) Send(signal Signal, value Payload) {
	b.channel.Send(extensibility.BridgedEvent{Signal: uint32(signal), Value: value})
}

// AddBridge registers b with the Framework; RunForever will drain it
// alongside its own wake/timer signalling.
func (f *Framework) AddBridge(b *Bridge) {
	f.bridges = append(f.bridges, b)
}

// selectCases builds the dynamic reflect.Select case list RunForever
// uses to wait on an arbitrary number of bridges plus its own wake/done
// channels. A handful of bridges is the expected scale (one per external
// producer), so reflect.Select's overhead versus a fixed select is not a
// concern on this path.
func (f *Framework) selectCases(done <-chan struct{}) ([]reflect.SelectCase, []*Bridge) {
	cases := []reflect.SelectCase{
		{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(f.wake)},
		{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(done)},
	}
	for _, b := range f.bridges {
		cases = append(cases, reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(b.channel.Events())})
	}
	return cases, f.bridges
}
