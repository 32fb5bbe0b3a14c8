// Package primitives holds the zero-dependency data structures shared by
// the rest of the internal tree: the extended-state Context map, and a
// plain build-time version string. It uses only the standard library
// (unlike internal/extensibility, which imports zerolog) — the
// dispatch-critical hot path stays
// free of anything that could add indirection or allocation surprises.
package primitives
