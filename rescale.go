package decimal128

import "fmt"

// Rescale multiplies or divides v's unscaled value by 10^|exponent|:
// positive exponent scales up (multiply, checked for overflow);
// negative exponent scales down (divide, with half-up-away-from-zero
// rounding of the discarded digits). exponent == 0 returns v
// unchanged. exponent <= -39 always yields zero, since MaxUnscaled has
// only 38 digits.
func Rescale(v Decimal128, exponent int) (Decimal128, error) {
	switch {
	case exponent == 0:
		return v, nil
	case exponent > 0:
		return rescaleUp(v, exponent)
	case exponent <= -39:
		return Zero, nil
	default:
		return rescaleDown(v, -exponent)
	}
}

func rescaleUp(v Decimal128, exponent int) (Decimal128, error) {
	if exponent > 38 {
		if v.IsZero() {
			return Zero, nil
		}
		return Zero, fmt.Errorf("decimal128: rescale %s by 10^%d: %w", ToUnscaledString(v), exponent, ErrOverflow)
	}
	var buf [8]uint32
	vl := toLimbs4(v.lo, v.magnitudeHi())
	copy(buf[:4], vl[:])
	multiply256Destructive(&buf, toLimbs4Pow10(exponent))

	if buf[4] != 0 || buf[5] != 0 || buf[6] != 0 || buf[7] != 0 {
		return Zero, fmt.Errorf("decimal128: rescale %s by 10^%d: %w", ToUnscaledString(v), exponent, ErrOverflow)
	}
	lo, hi := fromLimbs4([4]uint32{buf[0], buf[1], buf[2], buf[3]})
	if hi&signBit != 0 {
		return Zero, fmt.Errorf("decimal128: rescale %s by 10^%d: %w", ToUnscaledString(v), exponent, ErrOverflow)
	}
	result := withSign(lo, hi, v.IsNegative())
	if Overflows(result, 38) {
		return Zero, fmt.Errorf("decimal128: rescale %s by 10^%d: %w", ToUnscaledString(v), exponent, ErrOverflow)
	}
	return result, nil
}

// rescaleDown computes round_half_up(|v| / 10^shift) and re-applies
// v's sign, rounding ties away from zero.
func rescaleDown(v Decimal128, shift int) (Decimal128, error) {
	d := pow10Magnitude(shift)
	absV := withSign(v.lo, v.magnitudeHi(), false)

	q, r, err := Divide(absV, 0, d, 0)
	if err != nil {
		return Zero, fmt.Errorf("decimal128: rescale %s by 10^-%d: %w", ToUnscaledString(v), shift, err)
	}

	dblLo, dblHi := shiftPairLeft(r.lo, r.magnitudeHi(), 1)
	if cmpPair(dblLo, dblHi, d.lo, d.magnitudeHi()) >= 0 {
		q, err = Add(q, FromInt64(1))
		if err != nil {
			return Zero, fmt.Errorf("decimal128: rescale %s by 10^-%d: %w", ToUnscaledString(v), shift, ErrOverflow)
		}
	}

	result := withSign(q.lo, q.magnitudeHi(), v.IsNegative())
	if Overflows(result, 38) {
		return Zero, fmt.Errorf("decimal128: rescale %s by 10^-%d: %w", ToUnscaledString(v), shift, ErrOverflow)
	}
	return result, nil
}

func cmpPair(lo1, hi1, lo2, hi2 uint64) int {
	switch {
	case hi1 < hi2:
		return -1
	case hi1 > hi2:
		return 1
	case lo1 < lo2:
		return -1
	case lo1 > lo2:
		return 1
	default:
		return 0
	}
}

// Overflows reports whether |v| >= 10^precision, for precision in
// [1, 38]. Precision outside that range is clamped: below 1 behaves as
// 1, above 38 always reports false since no larger threshold exists in
// the representable range.
func Overflows(v Decimal128, precision int) bool {
	if precision < 1 {
		precision = 1
	}
	if precision > 38 {
		return false
	}
	return cmpMag(v, pow10Magnitude(precision)) >= 0
}

// ThrowIfOverflows signals ErrOverflow iff |v| > MaxUnscaled.
func ThrowIfOverflows(v Decimal128) error {
	if cmpMag(v, MaxUnscaled) > 0 {
		return fmt.Errorf("decimal128: %s: %w", ToUnscaledString(v), ErrOverflow)
	}
	return nil
}

// ThrowIfOverflowsLongs is ThrowIfOverflows for callers that have
// assembled a candidate result into raw (low64, high64) registers
// rather than a Decimal128 value.
func ThrowIfOverflowsLongs(low64, high64 uint64) error {
	return ThrowIfOverflows(Decimal128{lo: low64, hi: high64})
}
