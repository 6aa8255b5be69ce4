package decimal128

// This file holds the little-endian 32-bit limb helpers shared by the
// multiplicative and division kernels. Limb 0 is always the
// least-significant word, matching the convention used throughout the
// package and by the Knuth Algorithm D references this port follows.

// toLimbs4 splits a 127-bit magnitude (lo, hi) into four little-endian
// 32-bit limbs.
func toLimbs4(lo, hi uint64) [4]uint32 {
	return [4]uint32{
		uint32(lo),
		uint32(lo >> 32),
		uint32(hi),
		uint32(hi >> 32),
	}
}

// fromLimbs4 recombines four little-endian 32-bit limbs into a
// (lo, hi) magnitude pair. It sees only those four limbs; callers that
// hold a wider product check the limbs above bit 127 for overflow
// themselves.
func fromLimbs4(limbs [4]uint32) (lo, hi uint64) {
	lo = uint64(limbs[0]) | uint64(limbs[1])<<32
	hi = uint64(limbs[2]) | uint64(limbs[3])<<32
	return lo, hi
}

// significantLength returns the number of limbs in limbs[:n] that are
// needed to represent the value, i.e. n minus the count of leading
// (most-significant) zero limbs. A fully zero slice reports length 1
// so callers always have at least one limb to look at.
func significantLength(limbs []uint32, n int) int {
	for n > 1 && limbs[n-1] == 0 {
		n--
	}
	return n
}

// isZeroLimbs reports whether limbs[:n] is entirely zero.
func isZeroLimbs(limbs []uint32, n int) bool {
	for i := 0; i < n; i++ {
		if limbs[i] != 0 {
			return false
		}
	}
	return true
}

// cmpLimbs compares a[:n] and b[:n] as unsigned little-endian limb
// magnitudes (limb 0 least significant), scanning from the most
// significant limb down, and returns -1, 0 or 1.
func cmpLimbs(a, b []uint32, n int) int {
	for i := n - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
