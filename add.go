package decimal128

import (
	"fmt"
	"math/bits"
)

// addMag adds two 127-bit-or-less magnitudes (lo1, hi1) and (lo2, hi2).
// The sum of two values each below 2^127 always fits in 128 bits, so
// the carry out of the top limb is always zero and is discarded.
func addMag(lo1, hi1, lo2, hi2 uint64) (lo, hi uint64) {
	lo, c := bits.Add64(lo1, lo2, 0)
	hi, _ = bits.Add64(hi1, hi2, c)
	return lo, hi
}

// subMag subtracts (lo2, hi2) from (lo1, hi1), which must be the
// larger-or-equal magnitude.
func subMag(lo1, hi1, lo2, hi2 uint64) (lo, hi uint64) {
	lo, borrow := bits.Sub64(lo1, lo2, 0)
	hi, _ = bits.Sub64(hi1, hi2, borrow)
	return lo, hi
}

// Add returns a + b, failing with ErrOverflow if the magnitude of the
// true sum exceeds MaxUnscaled.
func Add(a, b Decimal128) (Decimal128, error) {
	result, overflow := AddWithOverflow(a, b)
	if overflow != 0 || Overflows(result, 38) {
		return Zero, fmt.Errorf("decimal128: add %s + %s: %w", ToUnscaledString(a), ToUnscaledString(b), ErrOverflow)
	}
	return result, nil
}

// AddWithOverflow computes a + b modulo 2^127 into the returned value,
// and reports the signed multiple of 2^127 that was dropped: -1, 0 or
// +1, such that the true signed sum equals decode(out) + overflow *
// 2^127. Unlike Add, it never fails; it is the primitive to use when
// summing a long sequence of values and checking for overflow only
// once at the end.
func AddWithOverflow(a, b Decimal128) (Decimal128, int) {
	if a.IsNegative() == b.IsNegative() {
		lo, hi := addMag(a.lo, a.magnitudeHi(), b.lo, b.magnitudeHi())
		overflowed := hi&signBit != 0
		out := withSign(lo, hi&^signBit, a.IsNegative())
		if !overflowed {
			return out, 0
		}
		if a.IsNegative() {
			return out, -1
		}
		return out, 1
	}
	switch cmpMag(a, b) {
	case 0:
		return Zero, 0
	case 1:
		lo, hi := subMag(a.lo, a.magnitudeHi(), b.lo, b.magnitudeHi())
		return withSign(lo, hi, a.IsNegative()), 0
	default:
		lo, hi := subMag(b.lo, b.magnitudeHi(), a.lo, a.magnitudeHi())
		return withSign(lo, hi, b.IsNegative()), 0
	}
}
