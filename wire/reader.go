package wire

import (
	"math"
	"unicode/utf8"

	"github.com/brief-format/brief/errs"
	"github.com/brief-format/brief/source"
	"github.com/brief-format/brief/varint"
)

// Reader consumes tag bytes and their payloads from a Source. Like Writer, it
// carries no value-model knowledge — PeekTag/ExpectTag and the scalar readers
// are the full surface §4.2 and §4.3 build on.
type Reader struct {
	src source.Source
}

// NewReader creates a Reader over the given source.
func NewReader(src source.Source) *Reader {
	return &Reader{src: src}
}

// Pos returns the reader's current byte offset, used to annotate errors.
func (r *Reader) Pos() int {
	return r.src.Pos()
}

// PeekTag returns the next tag without consuming it.
func (r *Reader) PeekTag() (Tag, error) {
	b, err := r.src.Peek(1)
	if err != nil {
		return 0, errs.At(r.src.Pos(), errs.ErrEof)
	}

	return Tag(b[0]), nil
}

// ExpectTag consumes the next tag and errors errs.ErrUnexpected if it does not
// equal want. It does not validate want against the reserved F16/F128 tags;
// callers that need to reject those do so explicitly (see value.Kind dispatch).
func (r *Reader) ExpectTag(want Tag) error {
	got, err := r.readTag()
	if err != nil {
		return err
	}

	if got != want {
		return errs.AtContext(r.src.Pos(), errs.ErrUnexpected, "want "+want.String()+", got "+got.String())
	}

	return nil
}

func (r *Reader) readTag() (Tag, error) {
	b, err := r.src.Peek(1)
	if err != nil {
		return 0, errs.At(r.src.Pos(), errs.ErrEof)
	}

	t := Tag(b[0])
	r.src.Advance(1)

	if !t.Valid() {
		return 0, errs.At(r.src.Pos()-1, errs.ErrInvalidTag)
	}

	return t, nil
}

// byteCursor adapts Source into varint.ByteReader for the duration of a single
// varint decode.
type byteCursor struct{ src source.Source }

func (c byteCursor) ReadByte() (byte, error) {
	b, err := c.src.Peek(1)
	if err != nil {
		return 0, err
	}

	c.src.Advance(1)

	return b[0], nil
}

// ReadUInt reads a UInt tag's payload (the tag byte itself must already have
// been consumed by the caller via ExpectTag/PeekTag+Advance semantics handled
// at the value layer) decoded to at most maxBits.
func (r *Reader) ReadUInt(maxBits int) (uint64, error) {
	v, _, err := varint.DecodeUvarint(byteCursor{r.src}, maxBits)
	if err != nil {
		return 0, err
	}

	return v, nil
}

// ReadUInt128 reads a UInt payload as a 128-bit value.
func (r *Reader) ReadUInt128() (lo, hi uint64, err error) {
	lo, hi, _, err = varint.DecodeUvarint128(byteCursor{r.src})
	return lo, hi, err
}

// ReadSInt reads an SInt tag's payload at the given bit width.
func (r *Reader) ReadSInt(width int) (int64, error) {
	u, _, err := varint.DecodeUvarint(byteCursor{r.src}, width)
	if err != nil {
		return 0, err
	}

	return varint.ZigZagDecode(u, width), nil
}

// ReadSInt128 reads an SInt payload as a 128-bit signed value.
func (r *Reader) ReadSInt128() (lo uint64, hi int64, err error) {
	zlo, zhi, _, err := varint.DecodeUvarint128(byteCursor{r.src})
	if err != nil {
		return 0, 0, err
	}

	lo, hi = varint.ZigZagDecode128(zlo, zhi)

	return lo, hi, nil
}

// ReadF32 reads a raw little-endian float32 payload.
func (r *Reader) ReadF32() (float32, error) {
	b, err := r.src.Peek(4)
	if err != nil {
		return 0, errs.At(r.src.Pos(), errs.ErrEof)
	}

	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	r.src.Advance(4)

	return math.Float32frombits(bits), nil
}

// ReadF64 reads a raw little-endian float64 payload.
func (r *Reader) ReadF64() (float64, error) {
	b, err := r.src.Peek(8)
	if err != nil {
		return 0, errs.At(r.src.Pos(), errs.ErrEof)
	}

	var bits uint64
	for i := 7; i >= 0; i-- {
		bits = bits<<8 | uint64(b[i])
	}
	r.src.Advance(8)

	return math.Float64frombits(bits), nil
}

func (r *Reader) readLen() (int, error) {
	v, err := r.ReadUInt(64)
	if err != nil {
		return 0, err
	}

	if v > math.MaxInt32 {
		return 0, errs.At(r.src.Pos(), errs.ErrOverflow)
	}

	return int(v), nil
}

// ReadBytes reads a Bytes tag's length-prefixed payload. If the source allows
// zero-copy borrowing, the returned slice aliases source storage and is only
// valid until the next read; otherwise it is a fresh copy.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.readLen()
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, nil
	}

	if b, ok := r.src.Take(n); ok {
		return b, nil
	}

	dst := make([]byte, n)
	if err := r.src.CopyInto(dst); err != nil {
		return nil, errs.At(r.src.Pos(), errs.ErrEof)
	}

	return dst, nil
}

// ReadString reads a String tag's length-prefixed payload, validating UTF-8.
// The payload is read through ReadBytes, but the returned string is always a
// copy: converting it to a Go string does not borrow from the source.
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", errs.At(r.src.Pos(), errs.ErrInvalidUtf8)
	}

	return string(b), nil
}
