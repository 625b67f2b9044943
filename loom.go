// Package loom is the public API for the loom UI library.
//
// This is the recommended import for most applications:
//
//	import "github.com/loom-ui/loom"
//
// Usage:
//
//	st := loom.NewStore()
//	count, setCount := loom.Create(st.Root(), 0)
//	double := loom.Derive(st.Root(), func() int { return count.Get() * 2 })
//	setCount.Set(3) // double.Get() == 6
//
// The subpackages carry the rest: pkg/dom is the document model,
// pkg/bind wires signals to element facets, pkg/component adds props
// and a mount lifecycle, el is the element builder, and pkg/server
// streams facet patches to a browser.
package loom

import (
	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/reactive"
	"github.com/loom-ui/loom/pkg/server"
)

// Store owns a tree of signals, derivations and effects. See
// reactive.Store.
type Store = reactive.Store

// Scope is an ownership scope; disposing it tears down everything
// created under it. See reactive.Scope.
type Scope = reactive.Scope

// Effect is a computation re-run when its tracked sources change.
type Effect = reactive.Effect

// Document is an in-memory element tree. See dom.Document.
type Document = dom.Document

// Element is one node of a document. See dom.Element.
type Element = dom.Element

// Event is a dispatched DOM event.
type Event = dom.Event

// Ctx carries a component's document and scope.
type Ctx = component.Ctx

// Factory builds a component subtree.
type Factory = component.Factory

// Handle controls a mounted component.
type Handle = component.Handle

// NewStore creates an empty store.
func NewStore() *Store {
	return reactive.NewStore()
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	return dom.NewDocument()
}

// Create allocates a signal in sc and returns its read and write
// handles.
func Create[T any](sc *Scope, initial T) (*reactive.Reader[T], *reactive.Writer[T]) {
	return reactive.Create(sc, initial)
}

// Derive creates a derived value recomputed from its tracked sources on
// every read.
func Derive[T any](sc *Scope, fn func() T) *reactive.Derived[T] {
	return reactive.Derive(sc, fn)
}

// NewEffect runs fn now and again whenever a tracked source changes.
func NewEffect(sc *Scope, fn func()) *Effect {
	return reactive.NewEffect(sc, fn)
}

// Mount instantiates a component under parent and returns its handle.
func Mount(st *Store, doc *Document, parent *Element, factory Factory) *Handle {
	return component.Mount(st, doc, parent, factory)
}

// Serve runs the dev server for a root component until interrupted.
func Serve(root Factory, config *server.Config) error {
	return server.New(root, config).Start()
}
