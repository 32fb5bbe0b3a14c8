package qpgo

import "time"

// Clock abstracts "what time is it", so the timer manager can run
// against either the real wall clock or a manually-advanced test clock.
type Clock interface {
	Now() time.Time
}

// RealClock reports the actual wall-clock time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock whose time only moves when Advance is called,
// for deterministic timer tests (S2/S5) that never sleep.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a ManualClock starting at t.
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{now: t}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d and returns the new time.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// Handle cancels a scheduled callback. Cancel is idempotent.
type Handle interface {
	Cancel()
}

// Scheduler arranges for fn to run at or after `at`. Framework uses it to
// wake the run-to-completion loop when the next timer comes due.
type Scheduler interface {
	Schedule(at time.Time, fn func()) Handle
}

// RealScheduler schedules callbacks with time.AfterFunc.
type RealScheduler struct{}

type realHandle struct{ timer *time.Timer }

func (h realHandle) Cancel() {
	if h.timer != nil {
		h.timer.Stop()
	}
}

func (RealScheduler) Schedule(at time.Time, fn func()) Handle {
	d := time.Until(at)
	if d < 0 {
		d = 0
	}
	return realHandle{timer: time.AfterFunc(d, fn)}
}

// ManualScheduler never fires on its own: a test drives it entirely via
// Framework.Advance, which scans the TimerManager directly rather than
// relying on any callback Schedule would have armed. Schedule is a no-op.
type ManualScheduler struct{}

type noopHandle struct{}

func (noopHandle) Cancel() {}

func (ManualScheduler) Schedule(time.Time, func()) Handle {
	return noopHandle{}
}
