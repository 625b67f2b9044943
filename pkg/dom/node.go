package dom

import (
	"fmt"
	"strings"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota
	KindText
)

// Node is one entry in an element's child list.
type Node struct {
	Kind Kind
	Text string   // KindText
	El   *Element // KindElement
}

// Document owns a tree of elements and allocates their ids. Ids are the
// addresses used by the patch stream and by event routing from a client.
type Document struct {
	counter uint64
	nodes   map[string]*Element
	body    *Element
	sink    PatchSink
}

// NewDocument creates a document with an empty body element.
func NewDocument() *Document {
	d := &Document{nodes: make(map[string]*Element)}
	d.body = d.CreateElement("body")
	return d
}

// Body returns the document's root element.
func (d *Document) Body() *Element {
	return d.body
}

// CreateElement allocates a detached element with a fresh id.
func (d *Document) CreateElement(tag string) *Element {
	d.counter++
	el := &Element{
		doc:     d,
		id:      fmt.Sprintf("n%d", d.counter),
		tag:     strings.ToLower(tag),
		attrs:   make(map[string]string),
		claimed: make(map[string]bool),
	}
	d.nodes[el.id] = el
	return el
}

// ElementByID returns the element with the given id, or nil.
func (d *Document) ElementByID(id string) *Element {
	return d.nodes[id]
}

// SetSink attaches a patch sink. Facet mutations from now on are
// mirrored to it. Passing nil detaches.
func (d *Document) SetSink(s PatchSink) {
	d.sink = s
}

func (d *Document) emit(m Mutation) {
	if d.sink != nil {
		d.sink.Apply(m)
	}
}

func (d *Document) forget(el *Element) {
	delete(d.nodes, el.id)
	for _, c := range el.children {
		if c.Kind == KindElement {
			d.forget(c.El)
		}
	}
}
