package qpgo

import (
	"reflect"
	"time"

	"github.com/comalice/qpgo/internal/core"
	"github.com/comalice/qpgo/internal/extensibility"
	"github.com/rs/zerolog"
)

// Framework holds everything original_source/farc/Framework.py keeps as
// module-level globals: the AO registry, the priority table, the
// subscriber table, and the timer manager. Unlike the Python source, it
// is an instance — spec.md §9 rejects a singleton/global registry so
// that more than one Framework can coexist (e.g. one per test) without
// cross-contaminating state.
type Framework struct {
	Signals *SignalRegistry

	registry    core.Registry // priority -> *ActiveObject
	subscribers map[Signal][]*ActiveObject

	timers *core.TimerManager
	clock  Clock
	sched  Scheduler
	handle Handle

	Observer Observer
	Log      zerolog.Logger

	wake    chan struct{}
	bridges []*Bridge
}

// NewFramework creates an empty Framework using RealClock/RealScheduler
// — production wall-clock timing. Use NewFrameworkWithClock for
// deterministic tests.
func NewFramework() *Framework {
	return NewFrameworkWithClock(RealClock{}, RealScheduler{})
}

// NewFrameworkWithClock creates an empty Framework driven by the given
// Clock/Scheduler pair, e.g. a *ManualClock and ManualScheduler for
// tests that advance time explicitly via Advance.
func NewFrameworkWithClock(clock Clock, sched Scheduler) *Framework {
	return &Framework{
		Signals:     NewSignalRegistry(),
		registry:    core.NewMapRegistry(),
		subscribers: make(map[Signal][]*ActiveObject),
		timers:      core.NewTimerManager(),
		clock:       clock,
		sched:       sched,
		Log:         zerolog.Nop(),
		wake:        make(chan struct{}, 1),
	}
}

func (f *Framework) observer() Observer {
	if f.Observer == nil {
		return noopObserver{}
	}
	return f.Observer
}

// aos returns every registered ActiveObject ordered by ascending
// priority.
func (f *Framework) aos() []*ActiveObject {
	values := f.registry.All()
	out := make([]*ActiveObject, 0, len(values))
	for _, v := range values {
		out = append(out, v.(*ActiveObject))
	}
	return out
}

// Add registers ao with the framework and runs its Init. Priorities must
// be unique; Add returns ErrDuplicatePriority otherwise.
//
// Ported from original_source/farc/Framework.py's Framework.add plus
// Ahsm.start (which calls Hsm.init immediately after registration).
func (f *Framework) Add(ao *ActiveObject, initEvent Event) error {
	ao.Observer = f.Observer
	if err := f.registry.Register(ao.Priority, ao); err != nil {
		return ErrDuplicatePriority
	}

	f.observer().OnFrameworkAdd(ao)
	f.Log.Debug().Str("ao", ao.Name).Int("priority", ao.Priority).Msg("active object added")

	if err := Init(ao.HSM, initEvent); err != nil {
		return err
	}
	return nil
}

// Post delivers e to act's mailbox directly.
func (f *Framework) Post(e Event, act *ActiveObject) {
	act.PostFIFO(e)
	f.signalWake()
}

// PostByName delivers e to every registered AO whose Name equals name,
// matching the class-name-targeted Framework.post of the Python source
// kept for compatibility with code that addresses actors by role rather
// than by reference.
func (f *Framework) PostByName(e Event, name string) {
	for _, ao := range f.aos() {
		if ao.Name == name {
			ao.PostFIFO(e)
		}
	}
	f.signalWake()
}

// Subscribe adds act to the subscriber list for signame, registering the
// signal name if it is new.
func (f *Framework) Subscribe(signame string, act *ActiveObject) Signal {
	sigID := f.Signals.Register(signame)
	f.observer().OnSignalRegister(signame, sigID)
	f.subscribers[sigID] = append(f.subscribers[sigID], act)
	return sigID
}

// Publish posts e to every AO subscribed to e.Signal.
func (f *Framework) Publish(e Event) {
	for _, act := range f.subscribers[e.Signal] {
		act.PostFIFO(e)
	}
	f.signalWake()
}

// Run performs one full run-to-completion pass: repeatedly dispatch one
// event to the highest-priority (lowest Priority number) AO with a
// non-empty mailbox, until every mailbox is empty.
//
// Ported from original_source/farc/Framework.py's Framework.run.
func (f *Framework) Run() error {
	for {
		allEmpty := true
		for _, ao := range f.aos() {
			if !ao.HasMessages() {
				continue
			}
			e, ok := ao.popMessage()
			if !ok {
				continue
			}
			if err := Dispatch(ao.HSM, e); err != nil {
				return err
			}
			allEmpty = false
			break
		}
		if allEmpty {
			return nil
		}
	}
}

// signalWake marks the loop as having work to do, without blocking if
// nothing is listening yet.
func (f *Framework) signalWake() {
	select {
	case f.wake <- struct{}{}:
	default:
	}
}

// RunForever drives Run in a loop, blocking between cycles until new
// work is signalled by Post/Publish/a fired timer, or until done is
// closed. This is the Go analogue of the Python source's asyncio
// event loop invoking Framework.run via call_soon_threadsafe.
func (f *Framework) RunForever(done <-chan struct{}) error {
	for {
		f.deliverDue(f.clock.Now())
		if err := f.Run(); err != nil {
			return err
		}
		if len(f.bridges) == 0 {
			select {
			case <-f.wake:
			case <-done:
				return nil
			}
			continue
		}

		cases, bridges := f.selectCases(done)
		chosen, value, _ := reflect.Select(cases)
		switch {
		case chosen == 0: // wake
		case chosen == 1: // done
			return nil
		default:
			be := value.Interface().(extensibility.BridgedEvent)
			b := bridges[chosen-2]
			b.target.PostFIFO(Event{Signal: Signal(be.Signal), Value: be.Value})
		}
	}
}

// Stop cancels the pending timer callback, posts SIGTERM to every
// registered AO, and performs one final run-to-completion pass. The
// default top state consumes SIGTERM as handled without a transition, so
// no EXIT actions run unless some state transitions on SIGTERM itself.
//
// Ported from original_source/farc/Framework.py's Framework.stop.
func (f *Framework) Stop() error {
	if f.handle != nil {
		f.handle.Cancel()
		f.handle = nil
	}
	for _, ao := range f.aos() {
		ao.PostFIFO(EventSIGTERM)
	}
	if err := f.Run(); err != nil {
		return err
	}
	f.observer().OnFrameworkStop()
	f.Log.Info().Msg("framework stopped")
	return nil
}

// PrintInfo returns a snapshot of every registered AO's name and current
// state name, for diagnostics. Ported from
// original_source/farc/Framework.py's Framework.print_info; unlike the
// source, it returns data instead of printing directly, leaving the
// choice of sink (stdout, log, UI) to the caller.
func (f *Framework) PrintInfo() []ActiveObjectInfo {
	aos := f.aos()
	info := make([]ActiveObjectInfo, 0, len(aos))
	for _, ao := range aos {
		info = append(info, ActiveObjectInfo{
			Name:     ao.Name,
			Priority: ao.Priority,
			State:    ao.Current().Name,
		})
	}
	return info
}

// ActiveObjectInfo is one row of a Framework.PrintInfo snapshot.
type ActiveObjectInfo struct {
	Name     string
	Priority int
	State    string
}
