package reactive

// Scope owns reactive primitives for one mounted subtree. Disposing a
// scope releases every cell, derived value, and effect created under it,
// disposes child scopes first, and runs registered cleanups in reverse
// order. Handles into a disposed scope panic on use.
//
// Scopes form a tree rooted at Store.Root, mirroring component nesting.
type Scope struct {
	store    *Store
	id       uint64
	parent   *Scope
	children []*Scope

	// owned are the dependency nodes (cells, deriveds) created under
	// this scope. Disposal marks them dead and drops their subscribers.
	owned []*node

	cleanups []func()
	disposed bool
}

// Store returns the store this scope belongs to.
func (sc *Scope) Store() *Store {
	return sc.store
}

// Child creates a nested scope, disposed automatically when sc is.
func (sc *Scope) Child() *Scope {
	sc.checkLive()
	child := &Scope{
		store:  sc.store,
		id:     sc.store.allocID(),
		parent: sc,
	}
	sc.children = append(sc.children, child)
	return child
}

// OnDispose registers fn to run when the scope is disposed. Cleanups run
// after child scopes are gone, in reverse registration order.
func (sc *Scope) OnDispose(fn func()) {
	sc.checkLive()
	sc.cleanups = append(sc.cleanups, fn)
}

// Disposed reports whether Dispose has run.
func (sc *Scope) Disposed() bool {
	return sc.disposed
}

// Dispose releases the scope. Children are disposed first (newest
// first), then owned cells are marked dead and their subscriber sets
// dropped, then cleanups run. Dispose is idempotent.
func (sc *Scope) Dispose() {
	if sc.disposed {
		return
	}
	sc.disposed = true

	if sc.parent != nil {
		sc.parent.removeChild(sc)
	}

	children := sc.children
	sc.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	owned := sc.owned
	sc.owned = nil
	for _, n := range owned {
		n.disposed = true
		n.subs = nil
	}

	cleanups := sc.cleanups
	sc.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

func (sc *Scope) removeChild(child *Scope) {
	for i, c := range sc.children {
		if c == child {
			sc.children = append(sc.children[:i], sc.children[i+1:]...)
			return
		}
	}
}

// adopt records a dependency node as owned by this scope.
func (sc *Scope) adopt(n *node) {
	sc.checkLive()
	sc.owned = append(sc.owned, n)
}

func (sc *Scope) checkLive() {
	if sc.disposed {
		panic("loom: use of disposed scope")
	}
}
