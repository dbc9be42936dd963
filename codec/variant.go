package codec

import (
	"github.com/brief-format/brief/errs"
	"github.com/brief-format/brief/value"
)

// WriteVariantUnit emits a unit variant's bare discriminator: the name as a
// String in Named mode, the index as a UInt in Indexed mode.
func WriteVariantUnit(enc *value.Encoder, mode Mode, name string, index uint32) error {
	return writeKey(enc, mode, name, index)
}

// WriteVariantPayload emits the shared envelope for the three non-unit
// variant shapes (newtype, tuple, record): MapStart, discriminator, the
// payload produced by writeInner, MapEnd. writeInner is responsible for the
// shape-specific payload — a single value for newtype, a WriteTuple call for
// tuple, a WriteRecord call for record.
func WriteVariantPayload(enc *value.Encoder, mode Mode, name string, index uint32, writeInner func() error) error {
	if err := enc.BeginMap(); err != nil {
		return err
	}

	if err := writeKey(enc, mode, name, index); err != nil {
		return err
	}

	if err := writeInner(); err != nil {
		return err
	}

	return enc.EndMap()
}

// VariantTag identifies which case a decoded tagged union selects, in
// whichever of Named or Indexed form the producer used — the caller matches
// on whichever of Name/Index its schema uses for dispatch.
type VariantTag struct {
	Name  string
	Index uint32
	Named bool
}

// PeekVariantUnit reports whether the next value is a unit variant (a bare
// String or UInt discriminator) as opposed to the MapStart envelope the three
// payload-bearing shapes share.
func PeekVariantUnit(dec *value.Decoder) (unit bool, err error) {
	k, err := dec.PeekKind()
	if err != nil {
		return false, err
	}

	switch k {
	case value.KindString, value.KindUInt:
		return true, nil
	case value.KindMapStart:
		return false, nil
	default:
		return false, errs.AtContext(dec.Pos(), errs.ErrUnexpected, "variant must be String, UInt, or MapStart")
	}
}

// ReadVariantUnit consumes a unit variant's bare discriminator.
func ReadVariantUnit(dec *value.Decoder) (VariantTag, error) {
	k, err := dec.PeekKind()
	if err != nil {
		return VariantTag{}, err
	}

	if k == value.KindString {
		name, err := dec.ExpectString()
		return VariantTag{Name: name, Named: true}, err
	}

	v, err := dec.ExpectUInt(32)

	return VariantTag{Index: uint32(v)}, err
}

// ReadVariantEnvelope consumes MapStart and the single discriminator key of
// a non-unit variant. The caller then decodes exactly one payload value
// matching the reported shape and finally calls dec.ExpectMapEnd.
func ReadVariantEnvelope(dec *value.Decoder) (VariantTag, error) {
	if err := dec.ExpectMapStart(); err != nil {
		return VariantTag{}, err
	}

	k, err := dec.PeekKind()
	if err != nil {
		return VariantTag{}, err
	}

	switch k {
	case value.KindString:
		name, err := dec.ExpectString()
		return VariantTag{Name: name, Named: true}, err
	case value.KindUInt:
		v, err := dec.ExpectUInt(32)
		return VariantTag{Index: uint32(v)}, err
	default:
		return VariantTag{}, errs.AtContext(dec.Pos(), errs.ErrUnexpected, "variant discriminator must be String or UInt")
	}
}

// WriteInternallyTagged flattens a record variant's discriminator into the
// record itself under tagField, instead of wrapping it in the externally
// tagged envelope above. writeFields emits the variant's own fields as
// ordinary key, value pairs (e.g. via repeated enc.EmitString(name) plus the
// field's value) so the map's total entry count — discriminator included —
// stays even. A nested WriteRecord call does not fit here: it emits one
// complete map value rather than bare key, value pairs. Per §4.4 this form is
// Named-mode only; callers must
// never reach this in Indexed mode (rejectInternallyTaggedIndexed enforces
// it so the mistake surfaces immediately rather than producing a stream an
// Indexed-mode decoder would misinterpret as an ordinary integer-keyed
// record).
func WriteInternallyTagged(enc *value.Encoder, mode Mode, tagField, variantName string, writeFields func() error) error {
	if err := rejectInternallyTaggedIndexed(mode); err != nil {
		return err
	}

	if err := enc.BeginMap(); err != nil {
		return err
	}

	if err := enc.EmitString(tagField); err != nil {
		return err
	}

	if err := enc.EmitString(variantName); err != nil {
		return err
	}

	if err := writeFields(); err != nil {
		return err
	}

	return enc.EndMap()
}

// ReadInternallyTaggedTag consumes MapStart and requires the discriminator
// to be the first key, returning the selected variant's name. The caller
// continues with ReadRecordFields (using that variant's own Field schema)
// to consume the remaining fields and the closing MapEnd.
//
// Requiring the tag first (rather than allowing it anywhere among the
// record's keys, as ordinary field lookup would) avoids buffering untyped
// field values before the variant — and therefore their types — is known;
// every encoder this package writes satisfies it since WriteInternallyTagged
// always emits the tag first.
func ReadInternallyTaggedTag(dec *value.Decoder, mode Mode, tagField string) (string, error) {
	if err := rejectInternallyTaggedIndexed(mode); err != nil {
		return "", err
	}

	if err := dec.ExpectMapStart(); err != nil {
		return "", err
	}

	key, err := dec.ExpectString()
	if err != nil {
		return "", err
	}

	if key != tagField {
		return "", errs.AtContext(dec.Pos(), errs.ErrUnexpected, "expected internally tagged discriminator \""+tagField+"\" first")
	}

	return dec.ExpectString()
}

func rejectInternallyTaggedIndexed(mode Mode) error {
	if mode == Indexed {
		return errs.AtContext(-1, errs.ErrUnsupportedForm, "internally tagged union is not supported in Indexed mode")
	}

	return nil
}
