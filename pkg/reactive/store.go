package reactive

// Listener is anything that can be notified when a dependency changes.
// Effects and derived values implement it; so does any binding layered
// on top of this package.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	MarkDirty()

	// ID returns a unique identifier, used to deduplicate batched
	// notifications.
	ID() uint64
}

// sourceTracker is implemented by listeners that keep a reverse edge to
// their dependencies so they can unsubscribe before re-evaluating.
type sourceTracker interface {
	Listener
	addSource(n *node)
}

// Store owns a reactive graph: the id allocator, the tracking stack used
// for dependency discovery, and the batch queue. Independent Stores share
// nothing, so separate UI trees can be created and tested in isolation.
//
// A Store must only be used from one goroutine at a time.
type Store struct {
	nextID uint64

	// stack is the ambient subscriber stack. The top entry is registered
	// against every signal read until it is popped. A nil top entry
	// suppresses tracking (see Untracked).
	stack []Listener

	// batchDepth counts nested Batch calls. While positive, notifications
	// queue in pending instead of firing immediately.
	batchDepth int
	pending    []Listener

	root *Scope
}

// NewStore creates an empty store with a root scope.
func NewStore() *Store {
	st := &Store{}
	st.root = &Scope{store: st}
	st.root.id = st.allocID()
	return st
}

// Root returns the store's root scope. It lives as long as the store.
func (st *Store) Root() *Scope {
	return st.root
}

func (st *Store) allocID() uint64 {
	st.nextID++
	return st.nextID
}

// currentListener returns the subscriber on top of the tracking stack,
// or nil when no tracked evaluation is in progress.
func (st *Store) currentListener() Listener {
	if len(st.stack) == 0 {
		return nil
	}
	return st.stack[len(st.stack)-1]
}

// WithListener runs fn with l as the current subscriber. Every signal
// read during fn subscribes l. Passing nil suppresses tracking for the
// duration of fn.
func (st *Store) WithListener(l Listener, fn func()) {
	st.stack = append(st.stack, l)
	defer func() {
		st.stack = st.stack[:len(st.stack)-1]
	}()
	fn()
}

// Untracked runs fn with dependency tracking suppressed. Signal reads
// inside fn return values without subscribing anyone.
func (st *Store) Untracked(fn func()) {
	st.WithListener(nil, fn)
}

// Batch groups signal writes. Notifications triggered inside fn are
// collected, deduplicated by listener id, and delivered once when the
// outermost batch returns. Batches nest.
func (st *Store) Batch(fn func()) {
	st.batchDepth++
	defer func() {
		st.batchDepth--
		if st.batchDepth == 0 {
			st.flushPending()
		}
	}()
	fn()
}

func (st *Store) flushPending() {
	pending := st.pending
	st.pending = nil

	seen := make(map[uint64]bool, len(pending))
	for _, l := range pending {
		if seen[l.ID()] {
			continue
		}
		seen[l.ID()] = true
		l.MarkDirty()
	}
}

// checkWriteAllowed panics if a signal write is attempted while a tracked
// evaluation is running. A derived computation or binding projection must
// be a pure function of its sources; allowing writes there would create
// write-during-read cycles. Event handlers run outside any tracking
// window and are unaffected. Untracked provides an explicit escape hatch.
func (st *Store) checkWriteAllowed() {
	if st.currentListener() != nil {
		panic("loom: signal write during tracked evaluation")
	}
}

// node provides the shared subscriber bookkeeping for cells and derived
// values.
type node struct {
	id       uint64
	store    *Store
	subs     []Listener
	disposed bool
}

// subscribe registers l, deduplicating by id. Subscription order is
// preserved: it is the order in which subscribers are later notified.
func (n *node) subscribe(l Listener) {
	if l == nil {
		return
	}
	lid := l.ID()
	for _, existing := range n.subs {
		if existing.ID() == lid {
			return
		}
	}
	n.subs = append(n.subs, l)
}

// unsubscribe removes l. Removal keeps the remaining subscribers in
// their original order so the notification ordering guarantee holds.
func (n *node) unsubscribe(l Listener) {
	if l == nil {
		return
	}
	lid := l.ID()
	for i, existing := range n.subs {
		if existing.ID() == lid {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// notify delivers MarkDirty to all current subscribers in subscription
// order, or queues them when a batch is open. The subscriber list is
// copied first so listeners may subscribe or unsubscribe while being
// notified.
func (n *node) notify() {
	subs := make([]Listener, len(n.subs))
	copy(subs, n.subs)

	if n.store.batchDepth > 0 {
		n.store.pending = append(n.store.pending, subs...)
		return
	}
	for _, l := range subs {
		l.MarkDirty()
	}
}

// track registers the current subscriber, if any, against this node.
func (n *node) track() {
	l := n.store.currentListener()
	if l == nil {
		return
	}
	n.subscribe(l)
	if t, ok := l.(sourceTracker); ok {
		t.addSource(n)
	}
}

// checkLive panics if the node's owning scope has been disposed. Stale
// handles must fail loudly rather than silently touching dead state.
func (n *node) checkLive(kind string) {
	if n.disposed {
		panic("loom: use of " + kind + " after its scope was disposed")
	}
}
