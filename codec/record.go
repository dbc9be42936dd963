package codec

import (
	"github.com/brief-format/brief/errs"
	"github.com/brief-format/brief/internal/fieldindex"
	"github.com/brief-format/brief/value"
)

// Field describes one record field's wire identity: its name for Named mode
// and its declaration-order index for Indexed mode. Default reports whether
// the field has a default value to fall back on when absent from the wire
// (§4.4); it carries no default *value* itself — the caller's Assign/Write
// callbacks already close over that.
type Field struct {
	Name    string
	Index   uint32
	Default bool
}

// WriteRecord emits MapStart, (key, value) for each field in order, MapEnd.
// write is called once per field with its position in fields and must emit
// exactly one value.
func WriteRecord(enc *value.Encoder, mode Mode, fields []Field, write func(pos int, f Field) error) error {
	if err := enc.BeginMap(); err != nil {
		return err
	}

	for i, f := range fields {
		if err := writeKey(enc, mode, f.Name, f.Index); err != nil {
			return err
		}

		if err := write(i, f); err != nil {
			return err
		}
	}

	return enc.EndMap()
}

func writeKey(enc *value.Encoder, mode Mode, name string, index uint32) error {
	if mode == Indexed {
		return enc.EmitUInt(uint64(index))
	}

	return enc.EmitString(name)
}

// ReadRecord consumes MapStart, (key, value)*, MapEnd. For each key it
// resolves the field position via idx (Named dispatch by name, Indexed
// dispatch by integer position) and, when recognized, calls assign with that
// position — assign is responsible for decoding exactly one value from dec.
// An unrecognized key has its value skipped via value.Decoder.Skip, per
// §4.4's unknown-field tolerance. Repeated keys call assign again, giving
// last-write-wins for free since assign overwrites the caller's target.
//
// After MapEnd, the caller should inspect seen.Missing() against each field's
// Default to resolve errs.ErrMissingField.
func ReadRecord(dec *value.Decoder, cfg *Config, idx *fieldindex.Index, seen *fieldindex.Seen, assign func(pos int) error) error {
	if err := dec.ExpectMapStart(); err != nil {
		return err
	}

	return ReadRecordFields(dec, cfg, idx, seen, assign)
}

// ReadRecordFields consumes (key, value)* MapEnd — the same loop ReadRecord
// runs, but without first expecting MapStart. It exists for callers that
// already consumed the opening MapStart themselves, such as an internally
// tagged union reading its discriminator field before falling into ordinary
// record-field handling for the rest (see ReadInternallyTaggedTag).
func ReadRecordFields(dec *value.Decoder, cfg *Config, idx *fieldindex.Index, seen *fieldindex.Seen, assign func(pos int) error) error {
	for {
		k, err := dec.PeekKind()
		if err != nil {
			return err
		}

		if k == value.KindMapEnd {
			return dec.ExpectMapEnd()
		}

		pos, ok, err := readFieldKey(dec, k, idx)
		if err != nil {
			return err
		}

		if !ok {
			if err := dec.Skip(cfg.MaxDepth()); err != nil {
				return err
			}

			continue
		}

		if err := assign(pos); err != nil {
			return err
		}

		seen.Mark(pos)
	}
}

func readFieldKey(dec *value.Decoder, k value.Kind, idx *fieldindex.Index) (pos int, ok bool, err error) {
	switch k {
	case value.KindString:
		name, err := dec.ExpectString()
		if err != nil {
			return 0, false, err
		}

		pos, ok := idx.Lookup(name)

		return pos, ok, nil
	case value.KindUInt:
		v, err := dec.ExpectUInt(32)
		if err != nil {
			return 0, false, err
		}

		pos := int(v)
		if pos < 0 || pos >= idx.Len() {
			return 0, false, nil
		}

		return pos, true, nil
	default:
		return 0, false, errs.AtContext(dec.Pos(), errs.ErrUnexpected, "record key must be String or UInt")
	}
}
