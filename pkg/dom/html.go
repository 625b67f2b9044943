package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SetHTML replaces the element's entire child content by parsing markup
// as HTML. The string is injected verbatim: nothing is escaped and any
// script or markup it contains becomes part of the tree. This is the
// deliberately unsafe facet; the safe path for caller-supplied strings
// is SetText.
//
// Parsing follows the HTML5 algorithm via golang.org/x/net/html, which
// is total: malformed input yields a best-effort tree, never an error.
func (e *Element) SetHTML(markup string) {
	e.dropChildElements()

	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     e.tag,
		DataAtom: atom.Lookup([]byte(e.tag)),
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		// Unreachable with a string reader; fail loud if it ever happens.
		panic("loom: raw HTML parse: " + err.Error())
	}

	for _, n := range nodes {
		e.adoptHTML(n)
	}
	e.doc.emit(Mutation{Op: OpSetHTML, Target: e.id, Value: markup})
}

// adoptHTML converts a parsed html.Node subtree into document elements.
// Comments and doctypes are dropped.
func (e *Element) adoptHTML(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		e.children = append(e.children, &Node{Kind: KindText, Text: n.Data})

	case html.ElementNode:
		child := e.doc.CreateElement(n.Data)
		for _, a := range n.Attr {
			switch a.Key {
			case "class":
				child.classes = append(child.classes, strings.Fields(a.Val)...)
			case "style":
				child.styles = parseStyleAttr(a.Val)
			default:
				child.attrs[a.Key] = a.Val
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			child.adoptHTML(c)
		}
		child.parent = e
		e.children = append(e.children, &Node{Kind: KindElement, El: child})
	}
}

func parseStyleAttr(s string) []styleEntry {
	var entries []styleEntry
	for _, decl := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		if prop != "" && value != "" {
			entries = append(entries, styleEntry{prop: prop, value: value})
		}
	}
	return entries
}
