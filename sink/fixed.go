package sink

import "github.com/brief-format/brief/errs"

// Fixed writes into a caller-owned slice and reports errs.ErrBufferFull on
// overflow instead of growing, per §4.5 flavor 2.
type Fixed struct {
	buf []byte
	n   int
}

var _ Sink = (*Fixed)(nil)

// NewFixed wraps buf. Encoding never writes past len(buf); on overflow, Write
// returns errs.ErrBufferFull and Len() reports how many bytes were written
// before the failure.
func NewFixed(buf []byte) *Fixed {
	return &Fixed{buf: buf}
}

func (f *Fixed) Write(p []byte) error {
	if f.n+len(p) > len(f.buf) {
		return errs.At(f.n, errs.ErrBufferFull)
	}

	copy(f.buf[f.n:], p)
	f.n += len(p)

	return nil
}

func (f *Fixed) Len() int {
	return f.n
}

func (f *Fixed) Bytes() []byte {
	return f.buf[:f.n]
}
