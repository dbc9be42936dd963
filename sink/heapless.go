package sink

import "github.com/brief-format/brief/errs"

// Heapless is a fixed-capacity Sink whose storage is allocated once at
// construction and never grown, for the heap-free deployment target in §1.
// It differs from Fixed only in intent: Fixed wraps a slice the caller
// already owns (e.g. a stack array via Go's escape analysis), while Heapless
// owns a capacity it allocated itself exactly once.
type Heapless struct {
	buf []byte
	n   int
}

var _ Sink = (*Heapless)(nil)

// NewHeapless allocates a Heapless sink with the given fixed capacity. No
// further allocation occurs for the lifetime of the sink.
func NewHeapless(capacity int) *Heapless {
	return &Heapless{buf: make([]byte, capacity)}
}

func (h *Heapless) Write(p []byte) error {
	if h.n+len(p) > len(h.buf) {
		return errs.At(h.n, errs.ErrBufferFull)
	}

	copy(h.buf[h.n:], p)
	h.n += len(p)

	return nil
}

func (h *Heapless) Len() int {
	return h.n
}

func (h *Heapless) Bytes() []byte {
	return h.buf[:h.n]
}

// Reset zeroes the write cursor so the same backing array can encode another
// value without reallocating.
func (h *Heapless) Reset() {
	h.n = 0
}

// Cap returns the sink's fixed capacity.
func (h *Heapless) Cap() int {
	return len(h.buf)
}
