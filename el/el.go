// Package el is a small builder DSL for constructing document subtrees.
// Constructors take the document followed by a variadic argument list:
// strings become text children, elements become child nodes, and the
// Attr, Class, StyleDecl, and On values configure the element.
//
//	btn := el.Button(doc,
//		el.ID("inc"),
//		el.Class{"primary"},
//		"Click Me: ",
//		label,
//	)
package el

import "github.com/loom-ui/loom/pkg/dom"

// Attr sets one attribute.
type Attr struct {
	Key   string
	Value string
}

// Class adds classes.
type Class []string

// StyleDecl sets one inline style declaration.
type StyleDecl struct {
	Prop  string
	Value string
}

// handler attaches an event listener during construction.
type handler struct {
	event string
	fn    func(dom.Event)
}

// ID sets the id attribute.
func ID(id string) Attr { return Attr{Key: "id", Value: id} }

// Title sets the title attribute.
func Title(v string) Attr { return Attr{Key: "title", Value: v} }

// For sets the for attribute.
func For(v string) Attr { return Attr{Key: "for", Value: v} }

// Type sets the type attribute.
func Type(v string) Attr { return Attr{Key: "type", Value: v} }

// Style sets one inline style declaration.
func Style(prop, value string) StyleDecl { return StyleDecl{Prop: prop, Value: value} }

// On attaches an event handler at construction time. Handlers that must
// outlive-or-die with a reactive scope belong in bind.On instead.
func On(event string, fn func(dom.Event)) any { return handler{event: event, fn: fn} }

// OnClick attaches a click handler.
func OnClick(fn func(dom.Event)) any { return On("click", fn) }

// New builds an element with the given tag; the typed constructors below
// are shorthands over it.
func New(d *dom.Document, tag string, args ...any) *dom.Element {
	e := d.CreateElement(tag)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Allows conditional arguments.
		case string:
			e.AppendText(v)
		case *dom.Element:
			e.AppendChild(v)
		case []*dom.Element:
			for _, child := range v {
				e.AppendChild(child)
			}
		case Attr:
			e.SetAttribute(v.Key, v.Value)
		case Class:
			for _, c := range v {
				e.AddClass(c)
			}
		case StyleDecl:
			e.SetStyle(v.Prop, v.Value)
		case handler:
			e.AddEventListener(v.event, v.fn)
		default:
			panic("loom: unsupported element argument")
		}
	}
	return e
}

func Div(d *dom.Document, args ...any) *dom.Element      { return New(d, "div", args...) }
func Span(d *dom.Document, args ...any) *dom.Element     { return New(d, "span", args...) }
func P(d *dom.Document, args ...any) *dom.Element        { return New(d, "p", args...) }
func H1(d *dom.Document, args ...any) *dom.Element       { return New(d, "h1", args...) }
func H2(d *dom.Document, args ...any) *dom.Element       { return New(d, "h2", args...) }
func H3(d *dom.Document, args ...any) *dom.Element       { return New(d, "h3", args...) }
func Button(d *dom.Document, args ...any) *dom.Element   { return New(d, "button", args...) }
func Progress(d *dom.Document, args ...any) *dom.Element { return New(d, "progress", args...) }
func Label(d *dom.Document, args ...any) *dom.Element    { return New(d, "label", args...) }
func Input(d *dom.Document, args ...any) *dom.Element    { return New(d, "input", args...) }
func Ul(d *dom.Document, args ...any) *dom.Element       { return New(d, "ul", args...) }
func Li(d *dom.Document, args ...any) *dom.Element       { return New(d, "li", args...) }
func Pre(d *dom.Document, args ...any) *dom.Element      { return New(d, "pre", args...) }
func Code(d *dom.Document, args ...any) *dom.Element     { return New(d, "code", args...) }
func Section(d *dom.Document, args ...any) *dom.Element  { return New(d, "section", args...) }
func Strong(d *dom.Document, args ...any) *dom.Element   { return New(d, "strong", args...) }
func Em(d *dom.Document, args ...any) *dom.Element       { return New(d, "em", args...) }
func Br(d *dom.Document, args ...any) *dom.Element       { return New(d, "br", args...) }
