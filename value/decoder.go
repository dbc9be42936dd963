package value

import (
	"github.com/brief-format/brief/errs"
	"github.com/brief-format/brief/source"
	"github.com/brief-format/brief/wire"
)

// Decoder is the expect half of the value-model visitor, plus the
// discriminated next-value dispatch (PeekKind) that package codec uses when
// it cannot predict what arrives next — almost everywhere, since brief
// carries no schema on the wire.
type Decoder struct {
	r *wire.Reader
}

// NewDecoder creates a Decoder reading from src.
func NewDecoder(src source.Source) *Decoder {
	return &Decoder{r: wire.NewReader(src)}
}

// Pos returns the decoder's current byte offset, for error annotation by
// callers that wrap Decoder errors with additional context.
func (d *Decoder) Pos() int {
	return d.r.Pos()
}

// PeekKind classifies the next tag without consuming it. It rejects the
// reserved F16/F128 tags with errs.ErrUnsupportedForm and any byte outside
// §3's alphabet with errs.ErrInvalidTag, so callers never have to special-
// case those themselves.
func (d *Decoder) PeekKind() (Kind, error) {
	t, err := d.r.PeekTag()
	if err != nil {
		return 0, err
	}

	if !t.Valid() {
		return 0, errs.At(d.r.Pos(), errs.ErrInvalidTag)
	}

	if t == wire.TagF16 || t == wire.TagF128 {
		return 0, errs.At(d.r.Pos(), errs.ErrUnsupportedForm)
	}

	k, ok := kindOf(t)
	if !ok {
		return 0, errs.At(d.r.Pos(), errs.ErrInvalidTag)
	}

	return k, nil
}

// ExpectNull consumes a Null tag.
func (d *Decoder) ExpectNull() error {
	return d.r.ExpectTag(wire.TagNull)
}

// ExpectBool consumes a BoolFalse or BoolTrue tag.
func (d *Decoder) ExpectBool() (bool, error) {
	t, err := d.r.PeekTag()
	if err != nil {
		return false, err
	}

	switch t {
	case wire.TagBoolTrue:
		return true, d.r.ExpectTag(wire.TagBoolTrue)
	case wire.TagBoolFalse:
		return false, d.r.ExpectTag(wire.TagBoolFalse)
	default:
		return false, errs.AtContext(d.r.Pos(), errs.ErrUnexpected, "want Bool, got "+t.String())
	}
}

// ExpectUInt consumes a UInt tag and its payload, bounded to maxBits.
func (d *Decoder) ExpectUInt(maxBits int) (uint64, error) {
	if err := d.r.ExpectTag(wire.TagUInt); err != nil {
		return 0, err
	}

	return d.r.ReadUInt(maxBits)
}

// ExpectUInt128 consumes a UInt tag as a 128-bit value.
func (d *Decoder) ExpectUInt128() (lo, hi uint64, err error) {
	if err := d.r.ExpectTag(wire.TagUInt); err != nil {
		return 0, 0, err
	}

	return d.r.ReadUInt128()
}

// ExpectSInt consumes an SInt tag at the given natural width.
func (d *Decoder) ExpectSInt(width int) (int64, error) {
	if err := d.r.ExpectTag(wire.TagSInt); err != nil {
		return 0, err
	}

	return d.r.ReadSInt(width)
}

// ExpectSInt128 consumes an SInt tag as a 128-bit signed value.
func (d *Decoder) ExpectSInt128() (lo uint64, hi int64, err error) {
	if err := d.r.ExpectTag(wire.TagSInt); err != nil {
		return 0, 0, err
	}

	return d.r.ReadSInt128()
}

// ExpectF32 consumes an F32 tag and its payload.
func (d *Decoder) ExpectF32() (float32, error) {
	if err := d.r.ExpectTag(wire.TagF32); err != nil {
		return 0, err
	}

	return d.r.ReadF32()
}

// ExpectF64 consumes an F64 tag and its payload.
func (d *Decoder) ExpectF64() (float64, error) {
	if err := d.r.ExpectTag(wire.TagF64); err != nil {
		return 0, err
	}

	return d.r.ReadF64()
}

// ExpectBytes consumes a Bytes tag and its payload. The result may borrow
// from the underlying source; see source.Source.Take.
func (d *Decoder) ExpectBytes() ([]byte, error) {
	if err := d.r.ExpectTag(wire.TagBytes); err != nil {
		return nil, err
	}

	return d.r.ReadBytes()
}

// ExpectString consumes a String tag, validating UTF-8.
func (d *Decoder) ExpectString() (string, error) {
	if err := d.r.ExpectTag(wire.TagString); err != nil {
		return "", err
	}

	return d.r.ReadString()
}

// ExpectChar consumes a String tag and validates it holds exactly one code
// point, per §4.4's char rule.
func (d *Decoder) ExpectChar() (rune, error) {
	s, err := d.ExpectString()
	if err != nil {
		return 0, err
	}

	runes := []rune(s)
	if len(runes) != 1 {
		return 0, errs.AtContext(d.r.Pos(), errs.ErrUnsupportedForm, "char must be exactly one code point")
	}

	return runes[0], nil
}

// ExpectSeqStart consumes a SeqStart tag.
func (d *Decoder) ExpectSeqStart() error {
	return d.r.ExpectTag(wire.TagSeqStart)
}

// ExpectSeqEnd consumes a SeqEnd tag.
func (d *Decoder) ExpectSeqEnd() error {
	return d.r.ExpectTag(wire.TagSeqEnd)
}

// ExpectMapStart consumes a MapStart tag.
func (d *Decoder) ExpectMapStart() error {
	return d.r.ExpectTag(wire.TagMapStart)
}

// ExpectMapEnd consumes a MapEnd tag.
func (d *Decoder) ExpectMapEnd() error {
	return d.r.ExpectTag(wire.TagMapEnd)
}
