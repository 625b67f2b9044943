// Package component defines Loom's component model: a component is a
// stateless factory that builds a DOM subtree once and wires bindings
// into it. There is no re-render and no structural diffing; rebuilding a
// subtree means unmounting and invoking the factory again.
package component

import (
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/reactive"
)

// Ctx carries what a factory needs to build its subtree: the document
// to create elements in and the scope that will own the signals and
// bindings it creates.
type Ctx struct {
	doc   *dom.Document
	scope *reactive.Scope
}

// Doc returns the document the component renders into.
func (c *Ctx) Doc() *dom.Document { return c.doc }

// Scope returns the scope owning this component instance's reactive
// state. It is disposed when the subtree is unmounted.
func (c *Ctx) Scope() *reactive.Scope { return c.scope }

// Child returns a Ctx for a nested component sharing the same document
// under a child scope.
func (c *Ctx) Child() *Ctx {
	return &Ctx{doc: c.doc, scope: c.scope.Child()}
}

// Factory builds a component's subtree. It runs exactly once per mount.
type Factory func(*Ctx) *dom.Element

// Handle is a mounted subtree. Unmount is the disposer returned by
// Mount.
type Handle struct {
	el        *dom.Element
	parent    *dom.Element
	scope     *reactive.Scope
	unmounted bool
}

// Mount invokes factory once, attaches the resulting subtree under
// parent, and returns a handle whose Unmount removes it again. Signals
// and bindings the factory creates live in a fresh scope owned by the
// mount; unmounting disposes that scope, which unsubscribes every
// binding referencing those signals.
func Mount(st *reactive.Store, doc *dom.Document, parent *dom.Element, factory Factory) *Handle {
	scope := st.Root().Child()
	ctx := &Ctx{doc: doc, scope: scope}
	el := factory(ctx)
	parent.AppendChild(el)
	return &Handle{el: el, parent: parent, scope: scope}
}

// Root returns the subtree's root element.
func (h *Handle) Root() *dom.Element { return h.el }

// Unmount detaches the subtree and disposes its scope. Calling Unmount
// on an already unmounted handle panics: stale disposers are programmer
// errors, not no-ops.
func (h *Handle) Unmount() {
	if h.unmounted {
		panic("loom: unmount of already unmounted subtree")
	}
	h.unmounted = true
	h.parent.RemoveChild(h.el)
	h.scope.Dispose()
}
