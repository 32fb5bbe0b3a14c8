// Package primitives provides versioning and extended-state primitives
// shared by the runtime.
package primitives

// Version identifies the runtime's wire/behavioral generation. There is
// no MachineConfig to hash a version from any more — each state tree is
// built in Go code, not loaded from a versioned document — so this is a
// plain build-time constant, bumped by hand when the Directive/Handler
// contract changes in a way old callers would need to notice.
const Version = "1"
