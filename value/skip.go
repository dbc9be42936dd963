package value

import "github.com/brief-format/brief/errs"

// Skip advances past one complete logical value without materializing it, by
// peeking the tag and recursively balancing SeqStart/SeqEnd and MapStart/
// MapEnd pairs (§4.4). It is how record and union decoding discard unknown
// fields and unrecognized variant payloads.
//
// maxDepth bounds the recursion the same way a hand-written iterative walker
// would bound an explicit stack: exceeding it returns errs.ErrDepthExceeded
// rather than growing the call stack without limit on adversarial input.
func (d *Decoder) Skip(maxDepth int) error {
	return d.skip(maxDepth)
}

func (d *Decoder) skip(depthLeft int) error {
	if depthLeft <= 0 {
		return errs.At(d.r.Pos(), errs.ErrDepthExceeded)
	}

	k, err := d.PeekKind()
	if err != nil {
		return err
	}

	switch k {
	case KindNull:
		return d.ExpectNull()
	case KindBool:
		_, err := d.ExpectBool()
		return err
	case KindUInt:
		// Use the 128-bit reader, not ExpectUInt(128): ReadUInt's accumulator is
		// only 64 bits wide, so a genuine >64-bit value would spuriously
		// overflow here instead of being skipped.
		_, _, err := d.ExpectUInt128()
		return err
	case KindSInt:
		_, _, err := d.ExpectSInt128()
		return err
	case KindF32:
		_, err := d.ExpectF32()
		return err
	case KindF64:
		_, err := d.ExpectF64()
		return err
	case KindBytes:
		_, err := d.ExpectBytes()
		return err
	case KindString:
		_, err := d.ExpectString()
		return err
	case KindSeqStart:
		return d.skipBracketed(depthLeft, d.ExpectSeqStart, d.ExpectSeqEnd, KindSeqEnd)
	case KindMapStart:
		return d.skipMap(depthLeft)
	case KindSeqEnd, KindMapEnd:
		return errs.At(d.r.Pos(), errs.ErrUnbalancedBracket)
	default:
		return errs.At(d.r.Pos(), errs.ErrInvalidTag)
	}
}

func (d *Decoder) skipBracketed(depthLeft int, begin, end func() error, endKind Kind) error {
	if err := begin(); err != nil {
		return err
	}

	for {
		k, err := d.PeekKind()
		if err != nil {
			return err
		}

		if k == endKind {
			return end()
		}

		if err := d.skip(depthLeft - 1); err != nil {
			return err
		}
	}
}

func (d *Decoder) skipMap(depthLeft int) error {
	if err := d.ExpectMapStart(); err != nil {
		return err
	}

	for {
		k, err := d.PeekKind()
		if err != nil {
			return err
		}

		if k == KindMapEnd {
			return d.ExpectMapEnd()
		}

		if err := d.skip(depthLeft - 1); err != nil {
			return err
		}

		if err := d.skip(depthLeft - 1); err != nil {
			return err
		}
	}
}
