package qpgo_test

import (
	"testing"

	"github.com/comalice/qpgo"
	"github.com/comalice/qpgo/testutil"
	"github.com/stretchr/testify/require"
)

const sigToggle qpgo.Signal = 100

func toggleFixture() *qpgo.State {
	b := qpgo.NewBuilder()
	on := b.Bind("on", func(h *qpgo.HSM, e qpgo.Event) qpgo.Directive {
		switch e.Signal {
		case qpgo.SigEntry, qpgo.SigExit:
			return qpgo.DirHandled()
		}
		return qpgo.DirSuper(h.Top())
	})
	return on
}

func TestNewActiveObjectHasUniqueInstanceIDAndEmptyMailbox(t *testing.T) {
	initial := toggleFixture()
	a := qpgo.NewActiveObject("toggle", 1, initial)
	bb := qpgo.NewActiveObject("toggle", 2, initial)

	require.Equal(t, "toggle", a.Name)
	require.Equal(t, 1, a.Priority)
	require.NotEqual(t, a.InstanceID, bb.InstanceID)
	require.False(t, a.HasMessages())
}

func TestActiveObjectMailboxIntegration(t *testing.T) {
	initial := toggleFixture()
	a := qpgo.NewActiveObject("toggle", 1, initial)

	require.False(t, a.HasMessages())
	a.PostFIFO(qpgo.Event{Signal: sigToggle})
	require.True(t, a.HasMessages())
}

func TestActiveObjectExtendedStateContext(t *testing.T) {
	initial := toggleFixture()
	a := qpgo.NewActiveObject("toggle", 1, initial)

	_, ok := a.Ext.Get("count")
	require.False(t, ok)

	a.Ext.Set("count", 3)
	v, ok := a.Ext.Get("count")
	require.True(t, ok)
	require.Equal(t, 3, v)

	a.Ext.Delete("count")
	_, ok = a.Ext.Get("count")
	require.False(t, ok)
}

// An ActiveObject's embedded *HSM is Observer-capable the same way a bare
// HSM is, so a testutil.TraceRecorder attached directly to it (bypassing
// Framework.Add, which overwrites ao.Observer with the Framework's own)
// sees the ENTRY triggered by Init.
func TestActiveObjectInitIsTracedByTraceRecorder(t *testing.T) {
	initial := toggleFixture()
	a := qpgo.NewActiveObject("toggle", 1, initial)
	rec := testutil.NewTraceRecorder()
	a.Observer = rec

	require.NoError(t, qpgo.Init(a.HSM, qpgo.EventInit))

	require.Equal(t, []string{"on"}, rec.Names("entry"))
}
