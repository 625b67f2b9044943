// Package reactive implements Loom's fine-grained reactive core: signals
// (observable mutable cells), derived computations, and effects.
//
// All state belongs to an explicit Store. A Store and everything created
// under it is confined to a single goroutine; there is no locking because
// there is no concurrent mutation. Reading a signal during a tracked
// evaluation (a derived computation or an effect body) registers the
// evaluator as a subscriber, so the dependency graph is discovered
// dynamically on every run rather than declared up front.
//
// Writes are synchronous: by the time Set or Update returns, every
// subscriber has been notified and has observed the new value. Batch
// defers and deduplicates notifications for grouped writes.
package reactive
