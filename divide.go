package decimal128

import (
	"fmt"
	"math/bits"
)

// toLimbs4Pow10 returns 10^k, k in [0, 38], as four little-endian
// 32-bit limbs, for use as the multiplier in multiply256Destructive
// when pre-scaling division operands.
func toLimbs4Pow10(k int) [4]uint32 {
	p := pow10Magnitude(k)
	return toLimbs4(p.lo, p.magnitudeHi())
}

// knuthDivide implements Knuth's Algorithm D (Hacker's Delight's
// divmnu) over base-2^32 limbs, both little-endian (limb 0 least
// significant). u has m limbs, v has n limbs with its top limb
// nonzero, and m >= n. n == 1 is handled as a direct 64-bit long
// division; n >= 2 runs the full normalize/estimate/correct loop. It
// returns the m-n+1 quotient limbs and the n remainder limbs; neither
// u nor v is modified.
func knuthDivide(u, v []uint32) (q, r []uint32) {
	n := len(v)
	m := len(u)
	q = make([]uint32, m-n+1)

	if n == 1 {
		var k uint64
		for j := m - 1; j >= 0; j-- {
			cur := k<<32 | uint64(u[j])
			q[j] = uint32(cur / uint64(v[0]))
			k = cur % uint64(v[0])
		}
		return q, []uint32{uint32(k)}
	}

	s := uint(bits.LeadingZeros32(v[n-1]))

	vn := make([]uint32, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = v[i]<<s | v[i-1]>>(32-s)
	}
	vn[0] = v[0] << s

	un := make([]uint32, m+1)
	un[m] = u[m-1] >> (32 - s)
	for i := m - 1; i > 0; i-- {
		un[i] = u[i]<<s | u[i-1]>>(32-s)
	}
	un[0] = u[0] << s

	const b = uint64(1) << 32

	for j := m - n; j >= 0; j-- {
		num := uint64(un[j+n])<<32 | uint64(un[j+n-1])
		qhat := num / uint64(vn[n-1])
		rhat := num % uint64(vn[n-1])

		for qhat >= b || qhat*uint64(vn[n-2]) > b*rhat+uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
			if rhat >= b {
				break
			}
		}

		var borrow int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - borrow - int64(uint32(p))
			un[i+j] = uint32(t)
			borrow = int64(p>>32) - (t >> 32)
		}
		t := int64(un[j+n]) - borrow
		un[j+n] = uint32(t)
		q[j] = uint32(qhat)

		if t < 0 {
			q[j]--
			var carry uint64
			for i := 0; i < n; i++ {
				sum := uint64(un[i+j]) + uint64(vn[i]) + carry
				un[i+j] = uint32(sum)
				carry = sum >> 32
			}
			un[j+n] += uint32(carry)
		}
	}

	r = make([]uint32, n)
	for i := 0; i < n-1; i++ {
		r[i] = un[i]>>s | un[i+1]<<(32-s)
	}
	r[n-1] = un[n-1] >> s
	return q, r
}

// Divide computes (dividend * 10^dividendRescale) divided by
// (divisor * 10^divisorRescale), producing a quotient and remainder
// such that rescaledDividend = quotient*rescaledDivisor + remainder,
// with |remainder| < |rescaledDivisor| and sign(remainder) equal to
// sign(rescaledDividend) whenever the remainder is nonzero. Quotient
// sign is the XOR of the operand signs. It fails with
// ErrDivisionByZero if the rescaled divisor is zero, and ErrOverflow
// if either output's magnitude would reach 10^38.
func Divide(dividend Decimal128, dividendRescale int, divisor Decimal128, divisorRescale int) (quotient, remainder Decimal128, err error) {
	var uBuf, vBuf [8]uint32
	dl := toLimbs4(dividend.lo, dividend.magnitudeHi())
	copy(uBuf[:4], dl[:])
	if dividendRescale > 0 {
		multiply256Destructive(&uBuf, toLimbs4Pow10(dividendRescale))
	}
	vl := toLimbs4(divisor.lo, divisor.magnitudeHi())
	copy(vBuf[:4], vl[:])
	if divisorRescale > 0 {
		multiply256Destructive(&vBuf, toLimbs4Pow10(divisorRescale))
	}

	um := significantLength(uBuf[:], len(uBuf))
	vn := significantLength(vBuf[:], len(vBuf))

	if isZeroLimbs(vBuf[:], vn) {
		return Zero, Zero, fmt.Errorf("decimal128: divide %s by %s: %w", ToUnscaledString(dividend), ToUnscaledString(divisor), ErrDivisionByZero)
	}

	quotientNegative := dividend.IsNegative() != divisor.IsNegative()
	remainderNegative := dividend.IsNegative()

	var qLimbs, rLimbs []uint32
	switch {
	case isZeroLimbs(uBuf[:], um):
		qLimbs = []uint32{0}
		rLimbs = []uint32{0}
	case cmpLimbs(uBuf[:], vBuf[:], len(uBuf)) < 0:
		qLimbs = []uint32{0}
		rLimbs = append([]uint32(nil), uBuf[:um]...)
	default:
		// uBuf's magnitude is >= vBuf's magnitude here (the shorter-
		// dividend case above already returned), so um >= vn.
		qLimbs, rLimbs = knuthDivide(uBuf[:um], vBuf[:vn])
	}

	qLo, qHi := limbsToPair(qLimbs)
	rLo, rHi := limbsToPair(rLimbs)
	if qHi&signBit != 0 || rHi&signBit != 0 {
		return Zero, Zero, fmt.Errorf("decimal128: divide %s by %s: %w", ToUnscaledString(dividend), ToUnscaledString(divisor), ErrOverflow)
	}

	quotient = withSign(qLo, qHi, quotientNegative)
	remainder = withSign(rLo, rHi, remainderNegative)
	if Overflows(quotient, 38) || Overflows(remainder, 38) {
		return Zero, Zero, fmt.Errorf("decimal128: divide %s by %s: %w", ToUnscaledString(dividend), ToUnscaledString(divisor), ErrOverflow)
	}
	return quotient, remainder, nil
}

// limbsToPair folds an arbitrary-length little-endian limb slice into
// a (lo, hi) 128-bit pair. Any set bit at position 128 or above means
// the value did not fit; callers detect that via the returned hi's
// sign bit landing on real magnitude, which Overflows/hi&signBit
// checks in Divide catch.
func limbsToPair(limbs []uint32) (lo, hi uint64) {
	var padded [4]uint32
	copy(padded[:], limbs)
	for i := 4; i < len(limbs); i++ {
		if limbs[i] != 0 {
			hi = signBit // force the overflow bit on
		}
	}
	l, h := fromLimbs4(padded)
	return l, hi | h
}
