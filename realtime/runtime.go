package realtime

import (
	"context"
	"time"

	"github.com/comalice/qpgo"
)

// Loop drives a *qpgo.Framework at a fixed tick rate, calling Run once
// per tick instead of waking only on Post/Publish/timer activity.
//
// Adapted from the teacher's RealtimeRuntime, which embedded the old
// engine's Runtime and added a ticker loop around it. The embedding
// relationship is kept in spirit — Loop wraps a *qpgo.Framework and
// reuses all of its dispatch logic — but there is no event batching or
// sequence-number sorting left: Framework's mailbox scheduling is
// already the deterministic ordering mechanism.
type Loop struct {
	fw       *qpgo.Framework
	tickRate time.Duration
	ticker   *time.Ticker

	tickNum    uint64
	tickCtx    context.Context
	tickCancel context.CancelFunc
	stopped    chan struct{}

	// OnPanic, if set, is called with the recovered value when a tick's
	// Run panics, instead of silently swallowing it.
	OnPanic func(recovered any)

	// OnTick, if set, runs at the start of every tick, before Run. It is
	// the hook callers use to post tick-driven events — a ticker-backed
	// Framework has no other path to fire periodic work, since Run alone
	// drains mailboxes and never touches the timer wheel.
	OnTick func()
}

// NewLoop creates a Loop driving fw at tickRate. A zero tickRate panics
// on Start via time.NewTicker; callers should pick a sensible default
// (e.g. 16667*time.Microsecond for 60Hz) rather than rely on one here.
func NewLoop(fw *qpgo.Framework, tickRate time.Duration) *Loop {
	return &Loop{
		fw:       fw,
		tickRate: tickRate,
		stopped:  make(chan struct{}),
	}
}

// Start begins the tick loop in its own goroutine.
func (l *Loop) Start(ctx context.Context) {
	l.tickCtx, l.tickCancel = context.WithCancel(ctx)
	l.ticker = time.NewTicker(l.tickRate)
	go l.run()
}

// Stop cancels the loop and waits for its goroutine to exit.
func (l *Loop) Stop() {
	if l.tickCancel != nil {
		l.tickCancel()
	}
	<-l.stopped
}

// TickNumber returns how many ticks have been processed so far.
func (l *Loop) TickNumber() uint64 {
	return l.tickNum
}

func (l *Loop) run() {
	defer close(l.stopped)
	defer l.ticker.Stop()

	for {
		select {
		case <-l.tickCtx.Done():
			return
		case <-l.ticker.C:
			l.processTick()
			l.tickNum++
		}
	}
}

func (l *Loop) processTick() {
	defer func() {
		if r := recover(); r != nil && l.OnPanic != nil {
			l.OnPanic(r)
		}
	}()
	if l.OnTick != nil {
		l.OnTick()
	}
	_ = l.fw.Run()
}
