package wire

import (
	"math"

	"github.com/brief-format/brief/endian"
	"github.com/brief-format/brief/sink"
	"github.com/brief-format/brief/varint"
)

// Writer emits tag bytes and their payloads onto a Sink. It holds no value-
// model knowledge; the composition rules in §4.4 are built on top of it.
type Writer struct {
	sink    sink.Sink
	engine  endian.EndianEngine
	scratch [19]byte // reused for varint payloads, sized for the widest (u128) group
}

// NewWriter creates a Writer over the given sink. Floats are always emitted
// little-endian per §3/§6.3; the raw-float helpers reuse the EndianEngine
// abstraction instead of calling encoding/binary directly.
func NewWriter(s sink.Sink) *Writer {
	return &Writer{sink: s, engine: endian.GetLittleEndianEngine()}
}

// Sink returns the underlying sink, so composition code can ask for its Len()
// for size bookkeeping.
func (w *Writer) Sink() sink.Sink {
	return w.sink
}

func (w *Writer) writeTag(t Tag) error {
	w.scratch[0] = byte(t)
	return w.sink.Write(w.scratch[:1])
}

// Null emits the Null tag (used for None, unit, and unit records per §4.4).
func (w *Writer) Null() error {
	return w.writeTag(TagNull)
}

// Bool emits BoolFalse or BoolTrue.
func (w *Writer) Bool(v bool) error {
	if v {
		return w.writeTag(TagBoolTrue)
	}

	return w.writeTag(TagBoolFalse)
}

// UInt emits UInt followed by the minimum-length uvarint encoding of v.
func (w *Writer) UInt(v uint64) error {
	if err := w.writeTag(TagUInt); err != nil {
		return err
	}

	n := varint.AppendUvarint(w.scratch[:0], v)

	return w.sink.Write(n)
}

// UInt128 emits UInt followed by the minimum-length uvarint encoding of a
// 128-bit unsigned value split into (lo, hi) little-endian words.
func (w *Writer) UInt128(lo, hi uint64) error {
	if err := w.writeTag(TagUInt); err != nil {
		return err
	}

	n := varint.AppendUvarint128(w.scratch[:0], lo, hi)

	return w.sink.Write(n)
}

// SInt emits SInt followed by the ZigZag+varint encoding of s at the given
// bit width.
func (w *Writer) SInt(s int64, width int) error {
	if err := w.writeTag(TagSInt); err != nil {
		return err
	}

	zz := varint.ZigZagEncode(s, width)
	n := varint.AppendUvarint(w.scratch[:0], zz)

	return w.sink.Write(n)
}

// SInt128 emits SInt for a 128-bit signed value (lo unsigned word, hi signed
// sign-extending word).
func (w *Writer) SInt128(lo uint64, hi int64) error {
	if err := w.writeTag(TagSInt); err != nil {
		return err
	}

	zlo, zhi := varint.ZigZagEncode128(lo, hi)
	n := varint.AppendUvarint128(w.scratch[:0], zlo, zhi)

	return w.sink.Write(n)
}

// F32 emits F32 followed by 4 bytes of little-endian IEEE 754.
func (w *Writer) F32(v float32) error {
	if err := w.writeTag(TagF32); err != nil {
		return err
	}

	buf := w.engine.AppendUint32(w.scratch[:0], math.Float32bits(v))

	return w.sink.Write(buf)
}

// F64 emits F64 followed by 8 bytes of little-endian IEEE 754.
func (w *Writer) F64(v float64) error {
	if err := w.writeTag(TagF64); err != nil {
		return err
	}

	buf := w.engine.AppendUint64(w.scratch[:0], math.Float64bits(v))

	return w.sink.Write(buf)
}

// Bytes emits Bytes followed by a varint length and the raw bytes.
func (w *Writer) Bytes(b []byte) error {
	if err := w.writeTag(TagBytes); err != nil {
		return err
	}

	return w.writeLenPrefixed(b)
}

// String emits String followed by a varint length and the UTF-8 bytes. The
// caller is responsible for s already being valid UTF-8 (Go strings are not
// guaranteed to be); brief does not re-validate on encode, only on decode.
func (w *Writer) String(s string) error {
	if err := w.writeTag(TagString); err != nil {
		return err
	}

	return w.writeLenPrefixedString(s)
}

func (w *Writer) writeLenPrefixed(b []byte) error {
	n := varint.AppendUvarint(w.scratch[:0], uint64(len(b)))
	if err := w.sink.Write(n); err != nil {
		return err
	}

	if len(b) == 0 {
		return nil
	}

	return w.sink.Write(b)
}

func (w *Writer) writeLenPrefixedString(s string) error {
	n := varint.AppendUvarint(w.scratch[:0], uint64(len(s)))
	if err := w.sink.Write(n); err != nil {
		return err
	}

	if len(s) == 0 {
		return nil
	}

	return w.sink.Write([]byte(s))
}

// SeqStart emits SeqStart.
func (w *Writer) SeqStart() error {
	return w.writeTag(TagSeqStart)
}

// SeqEnd emits SeqEnd.
func (w *Writer) SeqEnd() error {
	return w.writeTag(TagSeqEnd)
}

// MapStart emits MapStart.
func (w *Writer) MapStart() error {
	return w.writeTag(TagMapStart)
}

// MapEnd emits MapEnd.
func (w *Writer) MapEnd() error {
	return w.writeTag(TagMapEnd)
}
