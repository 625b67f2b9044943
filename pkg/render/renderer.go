// Package render serializes a document subtree to HTML. The dev server
// uses it for the initial page a browser receives before the live patch
// stream takes over, and loom export uses it for static output.
package render

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/loom-ui/loom/pkg/dom"
)

// voidElements cannot have children and render without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// Config configures the HTML renderer.
type Config struct {
	// WireIDs emits data-loom-id attributes on bound elements so a
	// connected client can address them. Off for static export.
	WireIDs bool

	// Events emits data-loom-on attributes listing the events a bound
	// element listens for, so the client knows what to forward.
	Events bool
}

// Renderer serializes element trees to HTML.
type Renderer struct {
	config Config
}

// New creates a Renderer.
func New(config Config) *Renderer {
	return &Renderer{config: config}
}

// ToString renders the subtree rooted at el.
func (r *Renderer) ToString(el *dom.Element) string {
	var buf bytes.Buffer
	r.ToWriter(&buf, el)
	return buf.String()
}

// ToWriter streams the subtree rooted at el.
func (r *Renderer) ToWriter(w io.Writer, el *dom.Element) {
	r.renderElement(w, el)
}

func (r *Renderer) renderElement(w io.Writer, el *dom.Element) {
	tag := el.Tag()

	io.WriteString(w, "<")
	io.WriteString(w, tag)
	r.renderAttributes(w, el)
	io.WriteString(w, ">")

	if voidElements[tag] {
		return
	}

	for _, c := range el.Children() {
		switch c.Kind {
		case dom.KindText:
			io.WriteString(w, escapeHTML(c.Text))
		case dom.KindElement:
			r.renderElement(w, c.El)
		}
	}

	io.WriteString(w, "</")
	io.WriteString(w, tag)
	io.WriteString(w, ">")
}

// renderAttributes writes plain attributes in sorted order for
// deterministic output, then the class and style attributes, then the
// wire attributes.
func (r *Renderer) renderAttributes(w io.Writer, el *dom.Element) {
	names := el.AttributeNames()
	sort.Strings(names)
	for _, name := range names {
		v, _ := el.Attribute(name)
		io.WriteString(w, " ")
		io.WriteString(w, name)
		if v != "" {
			io.WriteString(w, `="`)
			io.WriteString(w, escapeAttr(v))
			io.WriteString(w, `"`)
		}
	}

	if classes := el.ClassList(); len(classes) > 0 {
		io.WriteString(w, ` class="`)
		io.WriteString(w, escapeAttr(strings.Join(classes, " ")))
		io.WriteString(w, `"`)
	}

	if style := el.StyleString(); style != "" {
		io.WriteString(w, ` style="`)
		io.WriteString(w, escapeAttr(style))
		io.WriteString(w, `"`)
	}

	if r.config.WireIDs && el.Bound() {
		io.WriteString(w, ` data-loom-id="`)
		io.WriteString(w, el.ID())
		io.WriteString(w, `"`)
	}
	if r.config.Events {
		if events := el.ListenerEvents(); len(events) > 0 {
			io.WriteString(w, ` data-loom-on="`)
			io.WriteString(w, strings.Join(events, " "))
			io.WriteString(w, `"`)
		}
	}
}
