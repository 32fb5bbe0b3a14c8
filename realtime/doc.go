// Package realtime drives a *qpgo.Framework's run-to-completion loop
// from a real timer, for applications (games, robotics, simulations)
// that want a fixed-cadence "tick" rather than waking only when an event
// or timer arrives.
//
// Unlike the teacher's tick-based runtime, this package does not batch
// or re-sort events: qpgo.Framework already delivers events in strict
// priority order via its own mailbox scheduling, so a tick here is
// nothing more than "call Run now" on a fixed schedule. What's kept from
// the teacher is the lifecycle shape: a ticker goroutine, a Start/Stop
// pair, and panic-isolated tick processing.
package realtime
