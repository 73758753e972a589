// Package protocol owns the display-stream wire contract and parsing primitives.
//
// Ownership boundary:
// - record framing (tag/length/payload)
// - stream decoding cursor
// - command model and per-tag arity validation
// - producer-side encoding
package protocol
