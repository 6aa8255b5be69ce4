package decimal128

import "math/big"

// pow10 holds 10^k for k in [0, 38] as unsigned magnitudes, packed the
// same way a Decimal128 magnitude is packed. pow10[38] is 10^38 itself,
// one past MaxUnscaled, and exists so overflow checks (Overflows,
// Rescale, the multiplicative kernel) have a threshold value to compare
// against without special-casing the top of the table.
// pow10 is initialized via a var initializer rather than an init func:
// MaxUnscaled's initializer transitively calls pow10Magnitude through
// FromBigInt/Overflows, and Go only orders that correctly if pow10 is
// part of the package's variable-dependency graph. An init func always
// runs after all package-level variables are initialized, which would
// leave pow10 all-zero when MaxUnscaled is built.
var pow10 = buildPow10Table()

func buildPow10Table() [39]Decimal128 {
	var table [39]Decimal128
	ten := new(big.Int).SetInt64(10)
	acc := new(big.Int).SetInt64(1)
	for k := 0; k <= 38; k++ {
		var buf [16]byte
		acc.FillBytes(buf[:])
		hi := beUint64(buf[0:8])
		lo := beUint64(buf[8:16])
		table[k] = Decimal128{lo: lo, hi: hi}
		acc.Mul(acc, ten)
	}
	return table
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// pow10Magnitude returns 10^k as an unsigned magnitude for k in
// [0, 38]. Callers must not mutate the returned value's sign; it is
// always non-negative.
func pow10Magnitude(k int) Decimal128 {
	return pow10[k]
}
