package codec

import "github.com/brief-format/brief/value"

// WriteOption emits Null for None, or writeInner's encoding for Some(inner).
// Per §4.4, this makes Option<Unit> indistinguishable from Some(Unit) on the
// wire — both are Null — which ReadOption resolves as None (see S6).
func WriteOption(enc *value.Encoder, present bool, writeInner func() error) error {
	if !present {
		return enc.EmitNull()
	}

	return writeInner()
}

// ReadOption peeks the next tag: Null means None; anything else means
// Some, and readInner is called to consume it. Because Some(Unit) also
// serializes as Null, a decoder targeting Option<Unit> cannot distinguish it
// from None — this is intentional (§4.4, S6) and readInner is simply never
// called in that case.
func ReadOption(dec *value.Decoder, readInner func() error) (present bool, err error) {
	k, err := dec.PeekKind()
	if err != nil {
		return false, err
	}

	if k == value.KindNull {
		return false, dec.ExpectNull()
	}

	if err := readInner(); err != nil {
		return false, err
	}

	return true, nil
}

// WriteUnit emits Null, for both the Unit scalar and unit records/variants.
func WriteUnit(enc *value.Encoder) error {
	return enc.EmitNull()
}

// ReadUnit consumes Null.
func ReadUnit(dec *value.Decoder) error {
	return dec.ExpectNull()
}
