package value

import (
	"github.com/brief-format/brief/sink"
	"github.com/brief-format/brief/wire"
)

// Encoder is the emit half of the value-model visitor. One Encoder call
// corresponds to exactly one L3 operation; package codec sequences these
// calls according to §4.4's composition rules.
type Encoder struct {
	w *wire.Writer
}

// NewEncoder creates an Encoder writing onto s.
func NewEncoder(s sink.Sink) *Encoder {
	return &Encoder{w: wire.NewWriter(s)}
}

// Sink returns the underlying sink.
func (e *Encoder) Sink() sink.Sink {
	return e.w.Sink()
}

// EmitNull emits Null — used directly for None, Unit, and unit records.
func (e *Encoder) EmitNull() error {
	return e.w.Null()
}

// EmitBool emits BoolFalse or BoolTrue.
func (e *Encoder) EmitBool(v bool) error {
	return e.w.Bool(v)
}

// EmitUInt emits an unsigned integer up to 64 bits.
func (e *Encoder) EmitUInt(v uint64) error {
	return e.w.UInt(v)
}

// EmitUInt128 emits an unsigned integer in the full 128-bit range.
func (e *Encoder) EmitUInt128(lo, hi uint64) error {
	return e.w.UInt128(lo, hi)
}

// EmitSInt emits a signed integer at the given natural width (8/16/32/64),
// ZigZag-encoded.
func (e *Encoder) EmitSInt(s int64, width int) error {
	return e.w.SInt(s, width)
}

// EmitSInt128 emits a 128-bit signed integer, ZigZag-encoded.
func (e *Encoder) EmitSInt128(lo uint64, hi int64) error {
	return e.w.SInt128(lo, hi)
}

// EmitF32 emits a 4-byte little-endian float.
func (e *Encoder) EmitF32(v float32) error {
	return e.w.F32(v)
}

// EmitF64 emits an 8-byte little-endian float.
func (e *Encoder) EmitF64(v float64) error {
	return e.w.F64(v)
}

// EmitBytes emits a length-prefixed byte blob.
func (e *Encoder) EmitBytes(b []byte) error {
	return e.w.Bytes(b)
}

// EmitString emits a length-prefixed UTF-8 string.
func (e *Encoder) EmitString(s string) error {
	return e.w.String(s)
}

// EmitChar emits a single code point as a one-rune String, per §4.4's char
// rule.
func (e *Encoder) EmitChar(r rune) error {
	return e.w.String(string(r))
}

// BeginSeq emits SeqStart.
func (e *Encoder) BeginSeq() error {
	return e.w.SeqStart()
}

// EndSeq emits SeqEnd.
func (e *Encoder) EndSeq() error {
	return e.w.SeqEnd()
}

// BeginMap emits MapStart.
func (e *Encoder) BeginMap() error {
	return e.w.MapStart()
}

// EndMap emits MapEnd.
func (e *Encoder) EndMap() error {
	return e.w.MapEnd()
}
