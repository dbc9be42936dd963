package source

import "github.com/brief-format/brief/errs"

// Slice is a contiguous in-memory Source. Because the backing array never
// moves and is never refilled, every read can be satisfied by Take: byte
// blobs decoded from a Slice borrow rather than copy. Decoded strings are
// still copies, since wire.Reader.ReadString converts the borrowed bytes to a
// Go string.
type Slice struct {
	data []byte
	pos  int
}

var _ Source = (*Slice)(nil)

// NewSlice wraps data for decoding. The returned Slice does not take
// ownership; the caller must keep data alive and unmodified for as long as
// any borrowed []byte from a decode call is in use.
func NewSlice(data []byte) *Slice {
	return &Slice{data: data}
}

func (s *Slice) Peek(n int) ([]byte, error) {
	if s.pos+n > len(s.data) {
		return nil, errs.ErrEof
	}

	return s.data[s.pos : s.pos+n], nil
}

func (s *Slice) Advance(n int) {
	s.pos += n
}

func (s *Slice) Take(n int) ([]byte, bool) {
	if s.pos+n > len(s.data) {
		return nil, false
	}

	b := s.data[s.pos : s.pos+n]
	s.pos += n

	return b, true
}

func (s *Slice) CopyInto(dst []byte) error {
	b, ok := s.Take(len(dst))
	if !ok {
		return errs.ErrEof
	}

	copy(dst, b)

	return nil
}

func (s *Slice) Pos() int {
	return s.pos
}

func (s *Slice) Remaining() (bool, error) {
	return s.pos < len(s.data), nil
}
