package reactive

// Derived is a computation over signals, readable like a signal itself.
// Every Get re-runs the function in a tracking window and rebuilds the
// dependency set from the signals actually read on that run, so a
// computation that branches over different signals re-subscribes
// correctly each time.
//
// Derived values are not cached: the contract of this core is dependency
// correctness, not memoization.
type Derived[T any] struct {
	node
	fn func() T

	// sources are the nodes read on the most recent evaluation.
	sources []*node
}

// Derive wraps fn as a derived value owned by sc. fn must not write
// signals; doing so panics.
func Derive[T any](sc *Scope, fn func() T) *Derived[T] {
	d := &Derived[T]{
		node: node{id: sc.store.allocID(), store: sc.store},
		fn:   fn,
	}
	sc.adopt(&d.node)
	sc.OnDispose(d.detachSources)
	return d
}

// Get evaluates the computation against the current source values. The
// caller, if it is itself being tracked, is subscribed to this derived
// value; the derived value in turn re-subscribes to whatever it reads
// during this evaluation, dropping sources it no longer reads.
func (d *Derived[T]) Get() T {
	d.checkLive("derived")
	d.track()

	d.detachSources()
	var v T
	d.store.WithListener(d, func() {
		v = d.fn()
	})
	return v
}

// MarkDirty propagates a source change to this derived value's own
// subscribers. There is no cached value to invalidate; subscribers
// re-read through Get and observe the post-write source values.
// Implements Listener.
func (d *Derived[T]) MarkDirty() {
	if d.disposed {
		return
	}
	d.notify()
}

// ID implements Listener.
func (d *Derived[T]) ID() uint64 {
	return d.id
}

// addSource implements sourceTracker.
func (d *Derived[T]) addSource(n *node) {
	for _, s := range d.sources {
		if s == n {
			return
		}
	}
	d.sources = append(d.sources, n)
}

func (d *Derived[T]) detachSources() {
	for _, s := range d.sources {
		s.unsubscribe(d)
	}
	d.sources = d.sources[:0]
}

var _ sourceTracker = (*Derived[int])(nil)
