// Package varint implements brief's L1 layer: variable-length integer encoding
// and the ZigZag transform used to bring signed integers into the unsigned
// varint alphabet.
//
// Every unsigned value is emitted low-7-bits-first, one byte per group, with the
// high bit of each byte set on every group but the last. The encoding is always
// minimum-length on the writer side; readers accept any length that fits within
// the target width, including padded chains of continuation bytes (§4.1 and §8
// property 3).
package varint

import "github.com/brief-format/brief/errs"

// Width8 through Width128 are the natural bit widths used to size the decode
// accumulator for a given Go integer kind, per the width table in §4.1.
const (
	Width8   = 8
	Width16  = 16
	Width32  = 32
	Width64  = 64
	Width128 = 128
)

// MaxBytes returns the maximum number of varint bytes needed to encode a value
// of the given bit width: ceil(width/7).
func MaxBytes(width int) int {
	return (width + 6) / 7
}

// AppendUvarint appends the minimum-length unsigned varint encoding of v to dst
// and returns the extended slice. v=0 is encoded as a single 0x00 byte.
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// AppendUvarint128 appends the minimum-length unsigned varint encoding of a
// 128-bit value, split into low and high 64-bit halves (little-endian words).
func AppendUvarint128(dst []byte, lo, hi uint64) []byte {
	if hi == 0 {
		return AppendUvarint(dst, lo)
	}

	for {
		b := byte(lo) & 0x7f
		lo = (lo >> 7) | (hi << 57)
		hi >>= 7

		if lo == 0 && hi == 0 {
			return append(dst, b)
		}

		dst = append(dst, b|0x80)
	}
}

// Len returns the number of bytes AppendUvarint would write for v, without
// allocating.
func Len(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// Len128 returns the number of bytes AppendUvarint128 would write for (lo, hi).
func Len128(lo, hi uint64) int {
	if hi == 0 {
		return Len(lo)
	}

	n := 0
	for lo != 0 || hi != 0 {
		lo, hi = (lo>>7)|(hi<<57), hi>>7
		n++
	}

	return n
}

// ByteReader is the minimal pull-based source uvarint decoding needs: one byte
// at a time, with EOF signaled by a non-nil error.
type ByteReader interface {
	ReadByte() (byte, error)
}

// DecodeUvarint decodes an unsigned varint from r, accumulating into a uint64.
// maxBits bounds the accepted value: decoding fails with errs.ErrOverflow if the
// value (or the number of continuation bytes) would exceed maxBits, and with
// errs.ErrEof if r runs out while the continuation bit is still set. Padded
// encodings (extra groups contributing zero) are accepted as long as the
// aggregate value fits, per §4.1.
func DecodeUvarint(r ByteReader, maxBits int) (uint64, int, error) {
	var result uint64

	maxGroups := MaxBytes(maxBits)

	for i := 0; ; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, i, errs.At(i, errs.ErrEof)
		}

		payload := uint64(b & 0x7f)
		shift := uint(i) * 7

		if i >= maxGroups && (payload != 0 || b&0x80 != 0) {
			return 0, i + 1, errs.At(i, errs.ErrOverflow)
		}

		if shift < 64 {
			if bitsLeft := uint(maxBits) - shift; bitsLeft < 7 && payload>>bitsLeft != 0 {
				// The final permitted group contributes fewer than 7 bits to the
				// target width (this is the only case that can drop bits silently
				// for maxBits == 64, where result>>maxBits below is a no-op).
				return 0, i + 1, errs.At(i, errs.ErrOverflow)
			}

			result |= payload << shift
		} else if payload != 0 {
			return 0, i + 1, errs.At(i, errs.ErrOverflow)
		}

		if b&0x80 == 0 {
			if maxBits < 64 && result>>uint(maxBits) != 0 {
				return 0, i + 1, errs.At(i, errs.ErrOverflow)
			}

			return result, i + 1, nil
		}
	}
}

// DecodeUvarint128 decodes an unsigned varint into a 128-bit value, returned
// as little-endian (lo, hi) words. It accepts padded encodings up to the
// 19-group limit implied by width 128 and rejects anything beyond with
// errs.ErrOverflow.
func DecodeUvarint128(r ByteReader) (lo, hi uint64, n int, err error) {
	maxGroups := MaxBytes(Width128)

	for i := 0; ; i++ {
		b, rerr := r.ReadByte()
		if rerr != nil {
			return 0, 0, i, errs.At(i, errs.ErrEof)
		}

		payload := uint64(b & 0x7f)
		shift := uint(i) * 7

		if i >= maxGroups && (payload != 0 || b&0x80 != 0) {
			return 0, 0, i + 1, errs.At(i, errs.ErrOverflow)
		}

		switch {
		case shift < 64:
			lo |= payload << shift
			if shift > 57 {
				hi |= payload >> (64 - shift)
			}
		case shift < 128:
			hiShift := shift - 64
			if bitsLeft := 64 - hiShift; bitsLeft < 7 && payload>>bitsLeft != 0 {
				return 0, 0, i + 1, errs.At(i, errs.ErrOverflow)
			}

			hi |= payload << hiShift
		case payload != 0:
			return 0, 0, i + 1, errs.At(i, errs.ErrOverflow)
		}

		if b&0x80 == 0 {
			return lo, hi, i + 1, nil
		}
	}
}

// ZigZagEncode maps a signed value to its unsigned ZigZag form:
// (s<<1) ^ (s>>63), relying on s already being a correctly sign-extended int64
// representation of the width-w value (as Go's int8/int16/int32/int64 ->
// int64 conversions naturally produce). The width parameter is accepted for
// symmetry with ZigZagDecode and documentation purposes; it does not change
// the computation for width <= 64.
func ZigZagEncode(s int64, _ int) uint64 {
	u := uint64(s)

	return (u << 1) ^ uint64(s>>63)
}

// ZigZagDecode reverses ZigZagEncode, returning an int64 sign-extended from
// the width-w value the varint decoder read.
func ZigZagDecode(u uint64, _ int) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// ZigZagEncode128 encodes a 128-bit signed value (sign-extended into hi) into
// its 128-bit unsigned ZigZag form, returned as (lo, hi) little-endian words.
func ZigZagEncode128(lo uint64, hi int64) (zlo, zhi uint64) {
	signMask := uint64(hi >> 63) // all-ones if negative, all-zeros if non-negative

	zlo = (lo << 1) ^ signMask
	zhi = (uint64(hi)<<1 | (lo >> 63)) ^ signMask

	return zlo, zhi
}

// ZigZagDecode128 reverses ZigZagEncode128.
func ZigZagDecode128(zlo, zhi uint64) (lo uint64, hi int64) {
	sign := -(zlo & 1)
	lo = (zlo >> 1) | (zhi << 63)
	hi = int64((zhi >> 1) ^ sign)

	return lo, hi
}
