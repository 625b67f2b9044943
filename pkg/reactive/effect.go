package reactive

// Effect runs a function immediately and re-runs it synchronously
// whenever a signal or derived value it read on its last run changes.
// Bindings are built on effects: the function reads reactive sources and
// writes one DOM facet.
type Effect struct {
	id    uint64
	store *Store
	fn    func()

	sources  []*node
	disposed bool
}

// NewEffect creates the effect under sc and runs it once before
// returning. The initial run establishes the first dependency set.
func NewEffect(sc *Scope, fn func()) *Effect {
	e := &Effect{
		id:    sc.store.allocID(),
		store: sc.store,
		fn:    fn,
	}
	sc.OnDispose(e.Dispose)
	e.run()
	return e
}

func (e *Effect) run() {
	e.detachSources()
	e.store.WithListener(e, e.fn)
}

// MarkDirty re-runs the effect. Notification arrives only after the
// triggering write completed, so the re-run observes the new value.
// Implements Listener.
func (e *Effect) MarkDirty() {
	if e.disposed {
		return
	}
	e.run()
}

// ID implements Listener.
func (e *Effect) ID() uint64 {
	return e.id
}

// addSource implements sourceTracker.
func (e *Effect) addSource(n *node) {
	for _, s := range e.sources {
		if s == n {
			return
		}
	}
	e.sources = append(e.sources, n)
}

func (e *Effect) detachSources() {
	for _, s := range e.sources {
		s.unsubscribe(e)
	}
	e.sources = e.sources[:0]
}

// Disposed reports whether the effect has been disposed.
func (e *Effect) Disposed() bool {
	return e.disposed
}

// Dispose unsubscribes the effect from all sources. Idempotent; called
// automatically when the owning scope is disposed.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.detachSources()
}

var _ sourceTracker = (*Effect)(nil)
