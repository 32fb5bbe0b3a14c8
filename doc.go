// Package qpgo implements a hierarchical state machine (HSM) runtime with
// active objects: state trees drill through nested INIT transitions, run
// guaranteed-order ENTRY/EXIT actions on arbitrary transitions, and are
// scheduled as independent, prioritized "active objects" with their own
// mailboxes, driven by a single cooperative run-to-completion loop.
//
// The state-transition topology and the dispatch algorithm follow Miro
// Samek's "Practical Statecharts in C/C++", 2nd ed., §2.11. The active
// object / framework split (mailbox, priority scheduling, timer wheel,
// publish-subscribe) follows the same shape as Dean Hall's farc.
package qpgo
