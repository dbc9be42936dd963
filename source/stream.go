package source

import (
	"bufio"
	"io"

	"github.com/brief-format/brief/errs"
)

// Stream reads from an io.Reader. It never borrows: Take always reports
// ok=false, so callers copy strings and bytes into caller- or decoder-owned
// storage, per §4.5 and §9's zero-copy note.
type Stream struct {
	r   *bufio.Reader
	pos int
}

var _ Source = (*Stream)(nil)

// NewStream wraps r for decoding. r is buffered internally; callers should not
// read from r directly once it has been handed to a Stream.
func NewStream(r io.Reader) *Stream {
	return &Stream{r: bufio.NewReader(r)}
}

func (s *Stream) Peek(n int) ([]byte, error) {
	b, err := s.r.Peek(n)
	if err != nil {
		return nil, errs.ErrEof
	}

	return b, nil
}

func (s *Stream) Advance(n int) {
	_, _ = s.r.Discard(n)
	s.pos += n
}

func (s *Stream) Take(int) ([]byte, bool) {
	return nil, false
}

func (s *Stream) CopyInto(dst []byte) error {
	_, err := io.ReadFull(s.r, dst)
	if err != nil {
		return errs.ErrEof
	}

	s.pos += len(dst)

	return nil
}

func (s *Stream) Pos() int {
	return s.pos
}

func (s *Stream) Remaining() (bool, error) {
	_, err := s.r.Peek(1)
	if err == nil {
		return true, nil
	}

	if err == io.EOF {
		return false, nil
	}

	return false, err
}
