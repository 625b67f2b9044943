package dom

import "strings"

// Element is one node in the document tree. Mutation methods each touch
// a single facet: text content, one attribute, one class, one style
// property, or the raw child markup.
type Element struct {
	doc    *Document
	id     string
	tag    string
	parent *Element

	attrs    map[string]string
	classes  []string
	styles   []styleEntry
	children []*Node

	listeners []listenerEntry

	// claimed tracks which facets a binding owns, keyed by facet+name.
	// Two bindings never race on the same facet of the same node.
	claimed map[string]bool
}

type styleEntry struct {
	prop  string
	value string
}

type listenerEntry struct {
	id      uint64
	event   string
	handler Handler
}

// Handler is an event callback. Handlers run synchronously on dispatch
// and may write signals.
type Handler func(Event)

// Event is a dispatched DOM event.
type Event struct {
	Type   string
	Target *Element
}

// ID returns the document-unique node id.
func (e *Element) ID() string { return e.id }

// Tag returns the lower-cased element tag.
func (e *Element) Tag() string { return e.tag }

// Parent returns the parent element, or nil for a detached element.
func (e *Element) Parent() *Element { return e.parent }

// Doc returns the owning document.
func (e *Element) Doc() *Document { return e.doc }

// Attributes

// SetAttribute sets one attribute to its string form.
func (e *Element) SetAttribute(name, value string) {
	e.attrs[name] = value
	e.doc.emit(Mutation{Op: OpSetAttr, Target: e.id, Key: name, Value: value})
}

// RemoveAttribute removes one attribute. Removing an absent attribute is
// a no-op.
func (e *Element) RemoveAttribute(name string) {
	if _, ok := e.attrs[name]; !ok {
		return
	}
	delete(e.attrs, name)
	e.doc.emit(Mutation{Op: OpRemoveAttr, Target: e.id, Key: name})
}

// Attribute returns the attribute value and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// AttributeNames returns the set attribute names in unspecified order.
func (e *Element) AttributeNames() []string {
	out := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		out = append(out, name)
	}
	return out
}

// Classes

// AddClass adds one class. Adding a class the element already has is a
// no-op.
func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
	e.doc.emit(Mutation{Op: OpAddClass, Target: e.id, Key: name})
}

// RemoveClass removes one class.
func (e *Element) RemoveClass(name string) {
	for i, c := range e.classes {
		if c == name {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			e.doc.emit(Mutation{Op: OpRemoveClass, Target: e.id, Key: name})
			return
		}
	}
}

// ToggleClass adds or removes one class to match on.
func (e *Element) ToggleClass(name string, on bool) {
	if on {
		e.AddClass(name)
	} else {
		e.RemoveClass(name)
	}
}

// HasClass reports whether the element carries the class.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// ClassList returns the classes in insertion order.
func (e *Element) ClassList() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// Styles

// SetStyle sets one inline style property, bypassing stylesheet rules.
// Custom properties (names starting with "--") pass through unchanged
// and are consumable by external stylesheets.
func (e *Element) SetStyle(prop, value string) {
	for i := range e.styles {
		if e.styles[i].prop == prop {
			e.styles[i].value = value
			e.doc.emit(Mutation{Op: OpSetStyle, Target: e.id, Key: prop, Value: value})
			return
		}
	}
	e.styles = append(e.styles, styleEntry{prop: prop, value: value})
	e.doc.emit(Mutation{Op: OpSetStyle, Target: e.id, Key: prop, Value: value})
}

// RemoveStyle removes one inline style property.
func (e *Element) RemoveStyle(prop string) {
	for i := range e.styles {
		if e.styles[i].prop == prop {
			e.styles = append(e.styles[:i], e.styles[i+1:]...)
			e.doc.emit(Mutation{Op: OpRemoveStyle, Target: e.id, Key: prop})
			return
		}
	}
}

// Style returns one inline style property's value and whether it is set.
func (e *Element) Style(prop string) (string, bool) {
	for _, s := range e.styles {
		if s.prop == prop {
			return s.value, true
		}
	}
	return "", false
}

// StyleString renders the inline styles in declaration order, the form
// the style attribute takes when serialized.
func (e *Element) StyleString() string {
	var b strings.Builder
	for i, s := range e.styles {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(s.prop)
		b.WriteString(": ")
		b.WriteString(s.value)
	}
	return b.String()
}

// Content

// SetText replaces all children with a single text node.
func (e *Element) SetText(text string) {
	e.dropChildElements()
	e.children = []*Node{{Kind: KindText, Text: text}}
	e.doc.emit(Mutation{Op: OpSetText, Target: e.id, Value: text})
}

// TextContent concatenates the text of the subtree.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.appendText(&b)
	return b.String()
}

func (e *Element) appendText(b *strings.Builder) {
	for _, c := range e.children {
		switch c.Kind {
		case KindText:
			b.WriteString(c.Text)
		case KindElement:
			c.El.appendText(b)
		}
	}
}

// AppendChild attaches child as the last child. The child must belong
// to the same document and must be detached.
func (e *Element) AppendChild(child *Element) {
	if child.doc != e.doc {
		panic("loom: appending element from another document")
	}
	if child.parent != nil {
		panic("loom: appending element that already has a parent")
	}
	child.parent = e
	e.children = append(e.children, &Node{Kind: KindElement, El: child})
}

// AppendText appends a text node.
func (e *Element) AppendText(text string) {
	e.children = append(e.children, &Node{Kind: KindText, Text: text})
}

// RemoveChild detaches child from this element and forgets its subtree's
// ids. Removing a non-child panics.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c.Kind == KindElement && c.El == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			e.doc.forget(child)
			return
		}
	}
	panic("loom: RemoveChild of an element that is not a child")
}

// Children returns the child nodes in order.
func (e *Element) Children() []*Node {
	out := make([]*Node, len(e.children))
	copy(out, e.children)
	return out
}

// ChildElements returns only the element children, in order.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, c := range e.children {
		if c.Kind == KindElement {
			out = append(out, c.El)
		}
	}
	return out
}

func (e *Element) dropChildElements() {
	for _, c := range e.children {
		if c.Kind == KindElement {
			c.El.parent = nil
			e.doc.forget(c.El)
		}
	}
	e.children = nil
}

// Events

// AddEventListener attaches a handler for the named event and returns a
// function that removes exactly that handler.
func (e *Element) AddEventListener(event string, h Handler) (remove func()) {
	e.doc.counter++
	id := e.doc.counter
	e.listeners = append(e.listeners, listenerEntry{id: id, event: event, handler: h})
	return func() {
		for i := range e.listeners {
			if e.listeners[i].id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// HasListeners reports whether any handler is attached for any event.
func (e *Element) HasListeners() bool {
	return len(e.listeners) > 0
}

// Bound reports whether the element carries listeners or bound facets.
// The renderer emits wire ids only for bound elements, since they are
// the only ones a patch stream or client event can address.
func (e *Element) Bound() bool {
	return len(e.listeners) > 0 || len(e.claimed) > 0
}

// ListenerEvents returns the distinct event names with handlers
// attached, in first-registration order.
func (e *Element) ListenerEvents() []string {
	var out []string
	for _, l := range e.listeners {
		seen := false
		for _, ev := range out {
			if ev == l.event {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, l.event)
		}
	}
	return out
}

// DispatchEvent runs the handlers registered for the event's type,
// synchronously and in registration order. The event's Target is set to
// this element. Handlers run to completion, including all signal
// notifications they trigger, before DispatchEvent returns.
func (e *Element) DispatchEvent(ev Event) {
	ev.Target = e
	entries := make([]listenerEntry, len(e.listeners))
	copy(entries, e.listeners)
	for _, entry := range entries {
		if entry.event == ev.Type {
			entry.handler(ev)
		}
	}
}

// Click dispatches a click event; shorthand used by tests and the live
// server's event routing.
func (e *Element) Click() {
	e.DispatchEvent(Event{Type: "click"})
}

// Facet claims

// ClaimFacet records that a binding owns the given facet (keyed by facet
// kind plus name, e.g. "attr:value"). It panics if the facet is already
// claimed: two bindings must never race on one facet of one node.
func (e *Element) ClaimFacet(key string) {
	if e.claimed[key] {
		panic("loom: facet " + key + " of <" + e.tag + "> already bound")
	}
	e.claimed[key] = true
}

// ReleaseFacet releases a claim made by a disposed binding.
func (e *Element) ReleaseFacet(key string) {
	delete(e.claimed, key)
}
