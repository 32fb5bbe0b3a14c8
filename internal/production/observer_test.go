package production

import (
	"bytes"
	"testing"

	"github.com/comalice/qpgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestZerologObserverLogsFrameworkAddAndStop(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	obs := NewZerologObserver(log)

	initial := qpgo.NewBoundState("s", func(h *qpgo.HSM, e qpgo.Event) qpgo.Directive {
		return qpgo.DirHandled()
	})
	ao := qpgo.NewActiveObject("worker", 1, initial)
	obs.OnFrameworkAdd(ao)
	obs.OnFrameworkStop()

	out := buf.String()
	require.Contains(t, out, "worker")
	require.Contains(t, out, "active object registered")
	require.Contains(t, out, "framework stopped")
}

func TestZerologObserverLogsSignalRegister(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	obs := NewZerologObserver(log)

	obs.OnSignalRegister("Alarm", qpgo.Signal(42))

	out := buf.String()
	require.Contains(t, out, "Alarm")
	require.Contains(t, out, "signal registered")
}
