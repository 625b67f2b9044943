// Package dom models the document tree Loom renders into. It is shaped
// like the browser DOM boundary the core talks to: elements carry
// attributes, a class list, inline styles, children, and event
// listeners, and every mutation touches exactly one facet of one node.
//
// The tree is plain memory, so components and bindings are testable
// without a browser. A Document can carry a PatchSink; when one is
// attached, every facet mutation is mirrored to it, which is how the
// live server streams updates to a real browser.
package dom
