// Package diff computes and applies compact, bit-packed edit scripts
// between byte sequences using Myers' O(ND) shortest-edit-script algorithm.
//
// diff never looks inside a byte for structure: the unit of comparison is
// always a single byte, never a line, a token, or a rune. Two operations
// form the public surface:
//
//	script, err := diff.ComputeBytes(old, new)
//	reconstructed, err := diff.ApplyBytes(old, script)
//
// [Compute] and [Apply] expose the same operations over caller-owned
// buffers for callers that want to avoid the allocating convenience
// wrappers.
//
// # Edit script format
//
// A script is a flat byte stream with no header, trailer, or length
// prefix — callers track length externally. Every opcode byte packs a
// 2-bit kind (Insert, Delete, or Keep) and a 6-bit count-minus-one
// (runs of 1..64). Insert opcodes are immediately followed by Count
// literal payload bytes.
//
// # Error handling
//
// Every error returned by this package is a sentinel from errors.go,
// classifiable with errors.Is. There is no internal recovery: diff is
// deterministic, so an error always means either caller misuse (an
// undersized buffer) or a structurally corrupt input script.
//
// # Concurrency
//
// [Compute] and [Apply] are synchronous, single-threaded, and allocate no
// package-level mutable state. Concurrent calls are safe as long as their
// buffers don't alias. Neither takes a context.Context; callers wanting
// cancellation must wrap the call externally.
package diff
