package qpgo

import (
	"testing"
	"time"

	"github.com/comalice/qpgo/internal/core"
	"github.com/stretchr/testify/require"
)

// countdownFixture is the one-shot countdown scenario (S2): a single
// "ticking" leaf state that records every TICK it receives.
func countdownFixture(ticks *[]string, sigTick Signal) *State {
	b := NewBuilder()
	ticking := b.Bind("ticking", func(h *HSM, e Event) Directive {
		switch e.Signal {
		case SigEntry, SigExit:
			return DirHandled()
		case sigTick:
			*ticks = append(*ticks, "tick")
			return DirHandled()
		}
		return DirSuper(h.Top())
	})
	return b.Bind("initial", func(h *HSM, e Event) Directive {
		return DirTran(ticking)
	})
}

func newManualFramework() (*Framework, *ManualClock) {
	clock := NewManualClock(time.Unix(0, 0))
	fw := NewFrameworkWithClock(clock, ManualScheduler{})
	return fw, clock
}

func TestFrameworkAdvanceFiresOneShotTimer(t *testing.T) {
	var ticks []string
	sigTick := firstUserSignal
	initial := countdownFixture(&ticks, sigTick)

	fw, _ := newManualFramework()
	ao := NewActiveObject("countdown", 1, initial)
	require.NoError(t, fw.Add(ao, EventInit))

	fw.PostIn(sigTick, nil, ao, 5*time.Second)

	require.NoError(t, fw.Advance(4*time.Second))
	require.Empty(t, ticks, "timer must not fire before its delay has elapsed")

	require.NoError(t, fw.Advance(1*time.Second))
	require.Equal(t, []string{"tick"}, ticks)

	require.NoError(t, fw.Advance(10*time.Second))
	require.Equal(t, []string{"tick"}, ticks, "one-shot timer must not fire twice")
}

// Due() fires a periodic timer at most once per call, re-arming it to the
// next expiration strictly after the current time — it does not backfill
// one event per skipped period. So three ticks take three Advance calls,
// each crossing exactly one more period boundary.
func TestFrameworkAdvanceFiresPeriodicTimerRepeatedly(t *testing.T) {
	var ticks []string
	sigTick := firstUserSignal
	initial := countdownFixture(&ticks, sigTick)

	fw, _ := newManualFramework()
	ao := NewActiveObject("countdown", 1, initial)
	require.NoError(t, fw.Add(ao, EventInit))

	fw.PostEvery(sigTick, nil, ao, time.Second, time.Second)

	require.NoError(t, fw.Advance(time.Second))
	require.Equal(t, 1, len(ticks))

	require.NoError(t, fw.Advance(time.Second))
	require.Equal(t, 2, len(ticks))

	require.NoError(t, fw.Advance(time.Second))
	require.Equal(t, 3, len(ticks))
}

func TestFrameworkDisarmCancelsPendingTimer(t *testing.T) {
	var ticks []string
	sigTick := firstUserSignal
	initial := countdownFixture(&ticks, sigTick)

	fw, _ := newManualFramework()
	ao := NewActiveObject("countdown", 1, initial)
	require.NoError(t, fw.Add(ao, EventInit))

	id := fw.PostIn(sigTick, nil, ao, time.Second)
	fw.Disarm(id)

	require.NoError(t, fw.Advance(5*time.Second))
	require.Empty(t, ticks)
}

func TestFrameworkAdvanceRequiresManualClock(t *testing.T) {
	fw := NewFramework() // RealClock
	err := fw.Advance(time.Second)
	require.ErrorIs(t, err, errNotManualClock)
}

func TestTimerManagerDueOrdersByExpiration(t *testing.T) {
	tm := core.NewTimerManager()
	base := time.Unix(100, 0)

	tm.Add(core.Timer{Expiration: base.Add(3 * time.Second)})
	tm.Add(core.Timer{Expiration: base.Add(1 * time.Second)})
	tm.Add(core.Timer{Expiration: base.Add(2 * time.Second)})

	due := tm.Due(base.Add(5 * time.Second))
	require.Len(t, due, 3)
	require.True(t, due[0].Expiration.Before(due[1].Expiration))
	require.True(t, due[1].Expiration.Before(due[2].Expiration))
}

// spec.md S5 requires colliding timers to still fire in the order they
// were added (A, B, C). TimerManager implements this by bumping each new
// arrival's Expiration forward by a nanosecond until it finds a free
// slot, so the earliest addition keeps the earliest (least-bumped)
// timestamp and Due, which sorts ascending by Expiration, returns it
// first. Distinguishing Value fields prove that firing order directly,
// not just that the timestamps end up distinct.
func TestTimerManagerCollisionPreservesFIFOFiringOrder(t *testing.T) {
	tm := core.NewTimerManager()
	at := time.Unix(200, 0)

	idA := tm.Add(core.Timer{Expiration: at, Value: "A"})
	idB := tm.Add(core.Timer{Expiration: at, Value: "B"})
	idC := tm.Add(core.Timer{Expiration: at, Value: "C"})
	require.NotEqual(t, idA, idB)
	require.NotEqual(t, idB, idC)

	due := tm.Due(at.Add(time.Millisecond))
	require.Len(t, due, 3)
	require.Equal(t, "A", due[0].Value)
	require.Equal(t, "B", due[1].Value)
	require.Equal(t, "C", due[2].Value)
	require.True(t, due[0].Expiration.Before(due[1].Expiration))
	require.True(t, due[1].Expiration.Before(due[2].Expiration))
}
