package qpgo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMailboxFIFOOrder(t *testing.T) {
	m := NewMailbox()
	m.PostFIFO(Event{Signal: firstUserSignal})
	m.PostFIFO(Event{Signal: firstUserSignal + 1})

	require.Equal(t, 2, m.Len())

	e, ok := m.Pop()
	require.True(t, ok)
	require.Equal(t, firstUserSignal, e.Signal)

	e, ok = m.Pop()
	require.True(t, ok)
	require.Equal(t, firstUserSignal+1, e.Signal)

	require.Equal(t, 0, m.Len())
}

func TestMailboxPostLIFOPreemptsQueuedEvents(t *testing.T) {
	m := NewMailbox()
	m.PostFIFO(Event{Signal: firstUserSignal})
	m.PostLIFO(Event{Signal: firstUserSignal + 1})

	e, ok := m.Pop()
	require.True(t, ok)
	require.Equal(t, firstUserSignal+1, e.Signal, "LIFO-posted event must be delivered before anything already queued")

	e, ok = m.Pop()
	require.True(t, ok)
	require.Equal(t, firstUserSignal, e.Signal)
}

func TestMailboxPopEmpty(t *testing.T) {
	m := NewMailbox()
	_, ok := m.Pop()
	require.False(t, ok)
}
