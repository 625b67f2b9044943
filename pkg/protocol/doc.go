// Package protocol defines the binary wire format between the dev
// server and the live browser client.
//
// Every websocket message starts with a one-byte frame type followed by
// a type-specific payload. Integers use protobuf-style varints and
// strings are length-prefixed, so a typical patch costs a handful of
// bytes. The decoder enforces allocation and collection limits so a
// malformed or hostile peer cannot force large allocations.
package protocol
