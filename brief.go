// Package brief provides a self-describing binary serialization format and
// codec: a compact, architecture-independent byte stream annotated with type
// tags, designed for schema evolution (fields can be added, reordered, or
// dropped without breaking old data) and usable in environments without a
// heap allocator.
//
// # Layers
//
// The implementation is layered bottom-up, and each layer is also usable on
// its own for callers that need finer control:
//
//   - varint — variable-length integer and ZigZag encoding (L1)
//   - wire — tag bytes and their immediate payloads (L2)
//   - value — the abstract value-model visitor (L3)
//   - codec — record/tuple/option/tagged-union composition rules (L4)
//   - sink / source — growable, fixed, heapless, and compressed buffer
//     adapters (L5)
//
// This package is the L6 entry point tying them together.
//
// # Basic usage
//
// A type participates in brief's codec by implementing Encodable and
// Decodable — the hand-written equivalent of what a derive macro would
// generate from field metadata:
//
//	type Point struct{ X, Y int64 }
//
//	func (p Point) EncodeBrief(enc *value.Encoder, mode codec.Mode) error {
//	    fields := []codec.Field{{Name: "x", Index: 0}, {Name: "y", Index: 1}}
//	    return codec.WriteRecord(enc, mode, fields, func(pos int, f codec.Field) error {
//	        if pos == 0 {
//	            return enc.EmitSInt(p.X, 64)
//	        }
//	        return enc.EmitSInt(p.Y, 64)
//	    })
//	}
//
//	s := sink.NewGrowable()
//	n, err := brief.Encode(p, s, codec.Named)
package brief

import (
	"github.com/brief-format/brief/codec"
	"github.com/brief-format/brief/compress"
	"github.com/brief-format/brief/errs"
	"github.com/brief-format/brief/format"
	"github.com/brief-format/brief/sink"
	"github.com/brief-format/brief/source"
	"github.com/brief-format/brief/value"
)

// Encodable is implemented by any type that can serialize itself to the
// value model. It is the hand-written analogue of the encode-visitor
// described in §6.1 — brief imposes no requirement on how it is produced.
type Encodable interface {
	EncodeBrief(enc *value.Encoder, mode codec.Mode) error
}

// Decodable is implemented by any type that can populate itself from the
// value model, matching §6.1's decode-visitor.
type Decodable interface {
	DecodeBrief(dec *value.Decoder, cfg *codec.Config) error
}

// Encode serializes v onto s in the given mode, per §4.6's encode(value,
// sink, mode). It returns the total number of bytes s holds after encoding.
//
// opts configures anything Encode itself needs to act on — currently only
// codec.WithCompression, which wraps s in a sink.Compressed so the finished
// wire-format stream is compressed before it reaches s (§6.3's compression
// section); the wire bytes produced for v are unaffected either way. Options
// that only matter to the caller's own EncodeBrief implementation, such as
// codec.WithMaxDepth, have no effect here — thread those through some other
// way if EncodeBrief needs them.
func Encode(v Encodable, s sink.Sink, mode codec.Mode, opts ...codec.Option) (int, error) {
	cfg, err := codec.NewConfig(opts...)
	if err != nil {
		return 0, err
	}

	if cfg.Compression() == format.CompressionNone {
		enc := value.NewEncoder(s)
		if err := v.EncodeBrief(enc, mode); err != nil {
			return s.Len(), err
		}

		return s.Len(), nil
	}

	codecImpl, err := compress.CreateCodec(cfg.Compression(), "brief.Encode")
	if err != nil {
		return s.Len(), err
	}

	cs := sink.NewCompressed(s, codecImpl)
	defer cs.Release()

	enc := value.NewEncoder(cs)
	if err := v.EncodeBrief(enc, mode); err != nil {
		return s.Len(), err
	}

	if err := cs.Finish(); err != nil {
		return s.Len(), err
	}

	return s.Len(), nil
}

// Decode consumes exactly one top-level value from src into v, per §4.6's
// decode(source) -> value. By default Decode also rejects any bytes
// remaining in src afterward with errs.ErrTrailingBytes; pass
// codec.WithExact(false) to allow trailing bytes, e.g. when decoding one
// value at a time from a source holding several concatenated values.
func Decode(v Decodable, src source.Source, opts ...codec.Option) error {
	cfg, err := codec.NewConfig(opts...)
	if err != nil {
		return err
	}

	dec := value.NewDecoder(src)
	if err := v.DecodeBrief(dec, cfg); err != nil {
		return err
	}

	if !cfg.Exact() {
		return nil
	}

	more, err := src.Remaining()
	if err != nil {
		return err
	}

	if more {
		return errs.At(src.Pos(), errs.ErrTrailingBytes)
	}

	return nil
}

// DecodeBytes is Decode for callers holding a raw byte slice rather than an
// already-constructed source.Source — the inverse of Encode's compression
// handling. If codec.WithCompression was supplied, data is first
// decompressed with the matching codec (source.NewCompressedSlice) before
// decoding begins; otherwise data is wrapped in a plain, zero-copy
// source.Slice.
func DecodeBytes(v Decodable, data []byte, opts ...codec.Option) error {
	cfg, err := codec.NewConfig(opts...)
	if err != nil {
		return err
	}

	if cfg.Compression() == format.CompressionNone {
		return Decode(v, source.NewSlice(data), opts...)
	}

	codecImpl, err := compress.CreateCodec(cfg.Compression(), "brief.Decode")
	if err != nil {
		return err
	}

	src, err := source.NewCompressedSlice(data, codecImpl)
	if err != nil {
		return err
	}

	return Decode(v, src, opts...)
}
