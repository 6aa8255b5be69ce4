package decimal128

import (
	"math/big"
	"sync"
)

// bint is a *big.Int with a package-private method set, used as a
// pooled scratch value for the decimal-string formatting in
// ToUnscaledString. The big.Int codec (FromBigInt, ToBigInt) allocates
// its own values, and the arithmetic kernels never use bint; they work
// directly on the 128-bit limbs.
type bint big.Int

// bpool caches *big.Int scratch values so that hot paths like
// ToUnscaledString do not allocate a fresh big.Int on every call.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

func getBint() *bint {
	return bpool.Get().(*bint)
}

func putBint(b *bint) {
	bpool.Put(b)
}

// setMagnitude loads the 127-bit unsigned magnitude (lo, hi) into z.
func (z *bint) setMagnitude(lo, hi uint64) {
	b := (*big.Int)(z)
	b.SetUint64(hi)
	b.Lsh(b, 64)
	var loBig big.Int
	loBig.SetUint64(lo)
	b.Or(b, &loBig)
}

// string returns the base-10 text of the magnitude held in z.
func (z *bint) string() string {
	return (*big.Int)(z).String()
}
