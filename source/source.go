// Package source provides the byte-source side of brief's L5 buffer adapters:
// the read end a wire.Reader pulls tag bytes and payloads from. Slice is a
// contiguous in-memory source that supports zero-copy borrowing; Stream reads
// from an io.Reader and must copy strings/bytes into caller storage since the
// underlying bytes are not guaranteed to stay put.
package source

// Source is the minimal byte-source contract from §6.2.
type Source interface {
	// Peek returns the next n bytes without consuming them, or
	// errs.ErrEof if fewer than n bytes remain.
	Peek(n int) ([]byte, error)
	// Advance consumes n bytes previously returned by Peek.
	Advance(n int)
	// Take attempts to borrow the next n bytes directly from contiguous
	// storage and advance past them in one step. ok is false when the source
	// cannot offer a zero-copy borrow (e.g. a streaming source, or a value
	// split across a refill boundary); callers must fall back to CopyInto.
	Take(n int) (b []byte, ok bool)
	// CopyInto consumes exactly len(dst) bytes into dst, or returns
	// errs.ErrEof if the source runs out first.
	CopyInto(dst []byte) error
	// Pos returns the current byte offset from the start of the stream, used
	// to annotate errors. Sources that cannot track position return -1.
	Pos() int
	// Remaining reports whether any bytes remain to be read. Used by the
	// top-level decode entry point to enforce the "exact" trailing-bytes rule.
	Remaining() (bool, error)
}
