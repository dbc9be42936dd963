package codec

import (
	"github.com/brief-format/brief/errs"
	"github.com/brief-format/brief/value"
)

// WriteTuple emits SeqStart, one value per element via write, SeqEnd. Tuples
// and tuple records share this: length is never transmitted, only arity
// implied by the write closure.
func WriteTuple(enc *value.Encoder, n int, write func(i int) error) error {
	if err := enc.BeginSeq(); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		if err := write(i); err != nil {
			return err
		}
	}

	return enc.EndSeq()
}

// ReadTuple consumes SeqStart, exactly n values via assign, SeqEnd. Fewer
// elements before SeqEnd is errs.ErrMissingElement; more is
// errs.ErrUnexpectedElement.
func ReadTuple(dec *value.Decoder, n int, assign func(i int) error) error {
	if err := dec.ExpectSeqStart(); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		k, err := dec.PeekKind()
		if err != nil {
			return err
		}

		if k == value.KindSeqEnd {
			return errs.At(dec.Pos(), errs.ErrMissingElement)
		}

		if err := assign(i); err != nil {
			return err
		}
	}

	k, err := dec.PeekKind()
	if err != nil {
		return err
	}

	if k != value.KindSeqEnd {
		return errs.At(dec.Pos(), errs.ErrUnexpectedElement)
	}

	return dec.ExpectSeqEnd()
}
