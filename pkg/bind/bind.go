// Package bind links reactive sources to single DOM facets. Each
// binding owns exactly one facet of one element (its text content, one
// attribute, one class, one style property, or its raw child markup)
// and rewrites just that facet when a source changes; no other part of
// the tree is touched.
//
// Bindings are built on reactive effects: the projection function runs
// in a tracking window, so whatever signals it reads become its
// dependency set, re-collected on every run.
package bind

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/reactive"
)

// State is a binding's lifecycle state. A binding mounts on its first
// render inside the constructor and stays mounted until disposed;
// disposed is terminal, a new binding is needed to re-subscribe.
type State uint8

const (
	StateUnmounted State = iota
	StateMounted
	StateDisposed
)

// Binding is a live link from a reactive source to one facet of one
// element.
type Binding struct {
	el       *dom.Element
	facetKey string
	effect   *reactive.Effect
	remove   func() // event listener removal, event bindings only
	state    State
}

func newFacetBinding(sc *reactive.Scope, el *dom.Element, facetKey string, write func()) *Binding {
	el.ClaimFacet(facetKey)
	b := &Binding{el: el, facetKey: facetKey}
	// The constructor performs the initial render; the effect's first
	// run is the unmounted -> mounted transition.
	b.effect = reactive.NewEffect(sc, write)
	b.state = StateMounted
	sc.OnDispose(b.Dispose)
	return b
}

// State returns the binding's lifecycle state.
func (b *Binding) State() State {
	return b.state
}

// Dispose unsubscribes the binding from its sources and releases its
// facet. Idempotent; also runs when the owning scope is disposed.
func (b *Binding) Dispose() {
	if b.state == StateDisposed {
		return
	}
	b.state = StateDisposed
	if b.effect != nil {
		b.effect.Dispose()
	}
	if b.remove != nil {
		b.remove()
	}
	if b.facetKey != "" {
		b.el.ReleaseFacet(b.facetKey)
	}
}

// Text binds the element's text content to f. The rendered string is
// always escaped output; markup in it stays inert.
func Text(sc *reactive.Scope, el *dom.Element, f func() string) *Binding {
	return newFacetBinding(sc, el, "content", func() {
		el.SetText(f())
	})
}

// Int binds the element's text content to an integer source.
func Int(sc *reactive.Scope, el *dom.Element, f func() int) *Binding {
	return Text(sc, el, func() string {
		return strconv.Itoa(f())
	})
}

// Attr binds one named attribute. The value's string form is written;
// a boolean true writes a bare (present) attribute and a boolean false
// removes the attribute rather than writing "false".
func Attr(sc *reactive.Scope, el *dom.Element, name string, f func() any) *Binding {
	return newFacetBinding(sc, el, "attr:"+name, func() {
		switch v := f().(type) {
		case bool:
			if v {
				el.SetAttribute(name, "")
			} else {
				el.RemoveAttribute(name)
			}
		default:
			el.SetAttribute(name, formatAttr(v))
		}
	})
}

// Class binds membership of one named class to a boolean source.
func Class(sc *reactive.Scope, el *dom.Element, name string, f func() bool) *Binding {
	return newFacetBinding(sc, el, "class:"+name, func() {
		el.ToggleClass(name, f())
	})
}

// Style binds one inline style property.
func Style(sc *reactive.Scope, el *dom.Element, prop string, f func() string) *Binding {
	return newFacetBinding(sc, el, "style:"+prop, func() {
		el.SetStyle(prop, f())
	})
}

// CSSVar binds one CSS custom property. The name is prefixed with "--"
// if it is not already; external stylesheets consume the property via
// var(). The write path is the same as Style's.
func CSSVar(sc *reactive.Scope, el *dom.Element, name string, f func() string) *Binding {
	if !strings.HasPrefix(name, "--") {
		name = "--" + name
	}
	return Style(sc, el, name, f)
}

// UnsafeHTML binds the element's entire child content to a raw markup
// source. The string is parsed as HTML with no escaping: script or
// markup in it is injected verbatim. This facet is deliberately a
// separate, loudly named constructor so callers cannot reach it through
// Text or Attr by accident.
//
// It claims the same "content" facet as Text: both rewrite the child
// list, so one element cannot carry both.
func UnsafeHTML(sc *reactive.Scope, el *dom.Element, f func() string) *Binding {
	return newFacetBinding(sc, el, "content", func() {
		el.SetHTML(f())
	})
}

// On attaches handler for the named DOM event. The handler runs
// synchronously when the event fires and may write signals. Event
// bindings have no reactive source and no exclusive facet; any number
// may share an element and event.
func On(sc *reactive.Scope, el *dom.Element, event string, handler func(dom.Event)) *Binding {
	b := &Binding{el: el, state: StateMounted}
	b.remove = el.AddEventListener(event, handler)
	sc.OnDispose(b.Dispose)
	return b
}

func formatAttr(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
