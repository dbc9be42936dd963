// Package sink provides the byte-sink side of brief's L5 buffer adapters: the
// write end a Writer appends encoded bytes to. Three flavors share the Sink
// interface — Growable (always succeeds barring allocation failure), Fixed (a
// caller-owned slice that reports BufferFull on overflow), and Heapless (a
// fixed-capacity buffer that never allocates after construction) — plus
// Compressed, which wraps any of them with a transport compression codec.
package sink

// Sink is the minimal byte-sink contract from §6.2: a single fallible Write.
// Implementations must treat a failed Write as leaving the sink's already-
// written prefix intact; brief never retries a partial write.
type Sink interface {
	// Write appends p to the sink, returning errs.ErrBufferFull or
	// errs.ErrAllocFailed on failure.
	Write(p []byte) error
	// Len returns the number of bytes written so far.
	Len() int
	// Bytes returns the accumulated bytes. For Growable and Heapless this is a
	// view over the sink's own storage and is only valid until the next Write.
	Bytes() []byte
}
