package decimal128

import "fmt"

// multiply256Destructive computes left[0:4] * right, an unsigned
// schoolbook product across eight 32-bit limbs, and overwrites left in
// place with the full 256-bit result (limb 0 least significant). It is
// the shared building block for the checked multiply, division's
// power-of-ten pre-scaling of its operands, and rescale's power-of-ten
// multiplication.
func multiply256Destructive(left *[8]uint32, right [4]uint32) {
	var a [4]uint32
	copy(a[:], left[:4])
	for i := range left {
		left[i] = 0
	}
	for i := 0; i < 4; i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < 4; j++ {
			idx := i + j
			prod := uint64(a[i])*uint64(right[j]) + uint64(left[idx]) + carry
			left[idx] = uint32(prod)
			carry = prod >> 32
		}
		idx := i + 4
		for carry != 0 {
			sum := uint64(left[idx]) + carry
			left[idx] = uint32(sum)
			carry = sum >> 32
			idx++
		}
	}
}

// multiplyMagByUint64 computes a[0:4] * k as a 6-limb unsigned product,
// the narrower schoolbook loop MultiplyLong uses instead of the full
// 4x4 multiply256Destructive when the second operand is known to fit
// in 64 bits.
func multiplyMagByUint64(a [4]uint32, k uint64) [6]uint32 {
	var out [6]uint32
	right := [2]uint32{uint32(k), uint32(k >> 32)}
	for i := 0; i < 4; i++ {
		if a[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < 2; j++ {
			idx := i + j
			prod := uint64(a[i])*uint64(right[j]) + uint64(out[idx]) + carry
			out[idx] = uint32(prod)
			carry = prod >> 32
		}
		idx := i + 2
		for carry != 0 {
			sum := uint64(out[idx]) + carry
			out[idx] = uint32(sum)
			carry = sum >> 32
			idx++
		}
	}
	return out
}

// Multiply returns a * b. Result sign is the XOR of the operand signs;
// zero is canonical. It fails with ErrOverflow if the magnitude of the
// true product exceeds MaxUnscaled.
func Multiply(a, b Decimal128) (Decimal128, error) {
	var buf [8]uint32
	al := toLimbs4(a.lo, a.magnitudeHi())
	copy(buf[:4], al[:])
	br := toLimbs4(b.lo, b.magnitudeHi())
	multiply256Destructive(&buf, br)

	if buf[4] != 0 || buf[5] != 0 || buf[6] != 0 || buf[7] != 0 {
		return Zero, fmt.Errorf("decimal128: multiply %s * %s: %w", ToUnscaledString(a), ToUnscaledString(b), ErrOverflow)
	}
	lo, hi := fromLimbs4([4]uint32{buf[0], buf[1], buf[2], buf[3]})
	if hi&signBit != 0 {
		return Zero, fmt.Errorf("decimal128: multiply %s * %s: %w", ToUnscaledString(a), ToUnscaledString(b), ErrOverflow)
	}
	result := withSign(lo, hi, a.IsNegative() != b.IsNegative())
	if Overflows(result, 38) {
		return Zero, fmt.Errorf("decimal128: multiply %s * %s: %w", ToUnscaledString(a), ToUnscaledString(b), ErrOverflow)
	}
	return result, nil
}

// MultiplyLong returns v * k for a 64-bit signed operand k. It has the
// same overflow contract as Multiply, using a narrower multiplication
// loop since k is known to fit in two limbs.
func MultiplyLong(v Decimal128, k int64) (Decimal128, error) {
	negative := v.IsNegative() != (k < 0)
	var kmag uint64
	if k < 0 {
		kmag = uint64(-(k + 1)) + 1
	} else {
		kmag = uint64(k)
	}
	a := toLimbs4(v.lo, v.magnitudeHi())
	out := multiplyMagByUint64(a, kmag)

	if out[4] != 0 || out[5] != 0 {
		return Zero, fmt.Errorf("decimal128: multiply %s * %d: %w", ToUnscaledString(v), k, ErrOverflow)
	}
	lo, hi := fromLimbs4([4]uint32{out[0], out[1], out[2], out[3]})
	if hi&signBit != 0 {
		return Zero, fmt.Errorf("decimal128: multiply %s * %d: %w", ToUnscaledString(v), k, ErrOverflow)
	}
	result := withSign(lo, hi, negative)
	if Overflows(result, 38) {
		return Zero, fmt.Errorf("decimal128: multiply %s * %d: %w", ToUnscaledString(v), k, ErrOverflow)
	}
	return result, nil
}
