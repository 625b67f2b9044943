package reactive

import "reflect"

// cell is one reactive value. It is reachable only through the Reader
// and Writer handles returned by Create.
type cell[T any] struct {
	node
	value T

	// equal suppresses notification when a write does not change the
	// value. Nil means defaultEquals.
	equal func(T, T) bool
}

// Reader is the read handle over a cell. Get participates in dependency
// tracking; Peek does not.
type Reader[T any] struct {
	c *cell[T]
}

// Writer is the write handle over a cell.
type Writer[T any] struct {
	c *cell[T]
}

// Create makes a fresh cell holding initial, owned by sc, and returns
// its read and write handles. The cell lives until sc is disposed; any
// handle use after that panics.
func Create[T any](sc *Scope, initial T) (*Reader[T], *Writer[T]) {
	c := &cell[T]{
		node:  node{id: sc.store.allocID(), store: sc.store},
		value: initial,
	}
	sc.adopt(&c.node)
	return &Reader[T]{c: c}, &Writer[T]{c: c}
}

// Get returns the current value. When called during a tracked evaluation
// (inside a derived computation or an effect body), the evaluator is
// subscribed to this cell; outside such a window Get is a plain read.
func (r *Reader[T]) Get() T {
	r.c.checkLive("signal reader")
	r.c.track()
	return r.c.value
}

// Peek returns the current value without subscribing anyone.
func (r *Reader[T]) Peek() T {
	r.c.checkLive("signal reader")
	return r.c.value
}

// ID returns the cell's unique id within its store.
func (r *Reader[T]) ID() uint64 {
	return r.c.id
}

// Set replaces the value. If the new value equals the old one (per the
// cell's equality function), no subscriber is notified. Otherwise every
// subscriber is notified synchronously, in subscription order, after the
// write has completed.
func (w *Writer[T]) Set(v T) {
	c := w.c
	c.checkLive("signal writer")
	c.store.checkWriteAllowed()
	if c.equals(c.value, v) {
		return
	}
	c.value = v
	c.notify()
}

// Update applies fn to the current value and stores the result,
// notifying as Set would. The read-modify-write is a single synchronous
// step: no other code observes the cell between the read and the write.
func (w *Writer[T]) Update(fn func(T) T) {
	c := w.c
	c.checkLive("signal writer")
	c.store.checkWriteAllowed()
	next := fn(c.value)
	if c.equals(c.value, next) {
		return
	}
	c.value = next
	c.notify()
}

// ID returns the cell's unique id within its store.
func (w *Writer[T]) ID() uint64 {
	return w.c.id
}

// WithEquals replaces the cell's equality function and returns the
// writer for chaining. Use it when reflect.DeepEqual is too expensive or
// has the wrong semantics for T.
func (w *Writer[T]) WithEquals(fn func(T, T) bool) *Writer[T] {
	w.c.equal = fn
	return w
}

func (c *cell[T]) equals(a, b T) bool {
	if c.equal != nil {
		return c.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals is structural equality: == for the common comparable
// types, reflect.DeepEqual for everything else. Types for which equality
// is meaningless (functions, channels) compare unequal under DeepEqual,
// so writes of such values always notify.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int64:
		return av == any(b).(int64)
	case uint64:
		return av == any(b).(uint64)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}
