package qpgo

import (
	"time"

	"github.com/comalice/qpgo/internal/core"
)

// PostIn arms a one-shot TimeEvent: signal is delivered to target after
// delay has elapsed.
//
// Ported from original_source/farc/Framework.py's addTimeEvent +
// original_source/farc/TimeEvent.py's TimeEvent.postIn.
func (f *Framework) PostIn(signal Signal, value Payload, target *ActiveObject, delay time.Duration) uint64 {
	return f.postAt(signal, value, target, f.clock.Now().Add(delay), 0)
}

// PostAt arms a one-shot TimeEvent firing at the given absolute time.
//
// Ported from original_source/farc/Framework.py's addTimeEventAt.
func (f *Framework) PostAt(signal Signal, value Payload, target *ActiveObject, at time.Time) uint64 {
	return f.postAt(signal, value, target, at, 0)
}

// PostEvery arms a periodic TimeEvent: signal fires every interval,
// starting at the first delay from now.
//
// Ported from original_source/farc/TimeEvent.py's TimeEvent.postEvery.
func (f *Framework) PostEvery(signal Signal, value Payload, target *ActiveObject, firstDelay, interval time.Duration) uint64 {
	return f.postAt(signal, value, target, f.clock.Now().Add(firstDelay), interval)
}

func (f *Framework) postAt(signal Signal, value Payload, target *ActiveObject, at time.Time, interval time.Duration) uint64 {
	id := f.timers.Add(core.Timer{
		Expiration: at,
		Signal:     uint32(signal),
		Value:      value,
		Target:     target,
		Interval:   interval,
	})
	f.armNext()
	return id
}

// Disarm cancels a pending TimeEvent previously returned by
// PostIn/PostAt/PostEvery. Disarming an id that has already fired (or
// never existed) is a no-op.
//
// Ported from original_source/farc/Framework.py's removeTimeEvent.
func (f *Framework) Disarm(id uint64) {
	f.timers.Remove(id)
	f.armNext()
}

// armNext (re)schedules the Scheduler callback for the earliest pending
// timer, cancelling any previously scheduled one. Mirrors
// original_source/farc/Framework.py's _insortTimeEvent bookkeeping around
// _tm_event_handle, generalized so any expiration change re-evaluates
// the single outstanding callback rather than only insertion.
func (f *Framework) armNext() {
	if f.handle != nil {
		f.handle.Cancel()
		f.handle = nil
	}
	at, ok := f.timers.NextExpiration()
	if !ok {
		return
	}
	f.handle = f.sched.Schedule(at, func() {
		select {
		case f.wake <- struct{}{}:
		default:
		}
	})
}

// deliverDue moves every timer due at or before now into its target's
// mailbox and re-arms the scheduler for whatever is now earliest.
//
// Ported from original_source/farc/Framework.py's timeEventCallback.
func (f *Framework) deliverDue(now time.Time) {
	for _, t := range f.timers.Due(now) {
		target, ok := t.Target.(*ActiveObject)
		if !ok || target == nil {
			continue
		}
		target.PostFIFO(Event{Signal: Signal(t.Signal), Value: t.Value})
	}
	f.armNext()
}

// Advance moves a *ManualClock forward by d, fires every timer now due,
// and runs one full run-to-completion pass. It is the deterministic
// substitute for RunForever's real-time wait, used by tests that must
// not sleep.
func (f *Framework) Advance(d time.Duration) error {
	mc, ok := f.clock.(*ManualClock)
	if !ok {
		return errNotManualClock
	}
	now := mc.Advance(d)
	f.deliverDue(now)
	return f.Run()
}
