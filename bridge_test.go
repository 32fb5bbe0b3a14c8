package qpgo_test

import (
	"testing"
	"time"

	"github.com/comalice/qpgo"
	"github.com/stretchr/testify/require"
)

func TestBridgeDeliversIntoTargetMailboxViaRunForever(t *testing.T) {
	initial := onOffFixture()

	fw := qpgo.NewFramework()
	ao := qpgo.NewActiveObject("switch", 1, initial)
	require.NoError(t, fw.Add(ao, qpgo.EventInit))

	br := qpgo.NewBridge(4, ao)
	fw.AddBridge(br)

	done := make(chan struct{})
	runErr := make(chan error, 1)
	go func() { runErr <- fw.RunForever(done) }()

	br.Send(sigTurnOn, nil)

	require.Eventually(t, func() bool {
		return ao.Current().Name == "on"
	}, time.Second, time.Millisecond)

	close(done)
	require.NoError(t, <-runErr)
}
