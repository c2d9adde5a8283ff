// Package primitives provides the foundational data structures for the tour:
// lessons, the per-lesson output sink, the tour configuration and the
// debug formatter used to render values the way the tutorial prints them.
//
// Core invariants:
// - Lines are immutable values once recorded
// - An Output keeps the first write error; later writes are no-ops
// - Debug rendering is deterministic (map keys are sorted)
package primitives
