// Package server is the loom dev server. It serves the initial HTML for
// an app, then holds a websocket per browser tab: DOM events flow up,
// binary facet patches flow back down. Each connection gets its own
// reactive store, document and component mount, so two tabs never share
// state.
package server
