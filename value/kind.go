// Package value implements brief's L3 layer: the abstract value-model visitor
// built on top of wire's tag stream. It adds no framing of its own — Encoder
// and Decoder are thin, capability-parameterized wrappers around wire.Writer
// and wire.Reader that give composition code (package codec) a semantic
// vocabulary (bools, integers, floats, strings, sequences, maps) instead of
// raw tag bytes, plus the discriminated next-value dispatch decoders need
// when they cannot predict what arrives next.
package value

import "github.com/brief-format/brief/wire"

// Kind is the semantic category of the next value in a stream, as
// distinguished by Decoder.PeekKind. It collapses wire.Tag's BoolFalse/
// BoolTrue pair into one Bool kind and otherwise tracks §3 one-for-one.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindUInt
	KindSInt
	KindF32
	KindF64
	KindBytes
	KindString
	KindSeqStart
	KindSeqEnd
	KindMapStart
	KindMapEnd
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindUInt:
		return "UInt"
	case KindSInt:
		return "SInt"
	case KindF32:
		return "F32"
	case KindF64:
		return "F64"
	case KindBytes:
		return "Bytes"
	case KindString:
		return "String"
	case KindSeqStart:
		return "SeqStart"
	case KindSeqEnd:
		return "SeqEnd"
	case KindMapStart:
		return "MapStart"
	case KindMapEnd:
		return "MapEnd"
	default:
		return "Unknown"
	}
}

// kindOf classifies a raw tag, returning ok=false for the reserved F16/F128
// tags and any invalid byte — callers surface errs.ErrUnsupportedForm and
// errs.ErrInvalidTag respectively rather than this package naming either.
func kindOf(t wire.Tag) (Kind, bool) {
	switch t {
	case wire.TagNull:
		return KindNull, true
	case wire.TagBoolFalse, wire.TagBoolTrue:
		return KindBool, true
	case wire.TagUInt:
		return KindUInt, true
	case wire.TagSInt:
		return KindSInt, true
	case wire.TagF32:
		return KindF32, true
	case wire.TagF64:
		return KindF64, true
	case wire.TagBytes:
		return KindBytes, true
	case wire.TagString:
		return KindString, true
	case wire.TagSeqStart:
		return KindSeqStart, true
	case wire.TagSeqEnd:
		return KindSeqEnd, true
	case wire.TagMapStart:
		return KindMapStart, true
	case wire.TagMapEnd:
		return KindMapEnd, true
	default:
		return 0, false
	}
}
