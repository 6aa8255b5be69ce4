package decimal128

import (
	"fmt"
	"math/big"
)

// MustAdd is like [Add] but panics if a+b overflows.
func MustAdd(a, b Decimal128) Decimal128 {
	d, err := Add(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v, %v) failed: %v", a, b, err))
	}
	return d
}

// MustMultiply is like [Multiply] but panics if a*b overflows.
func MustMultiply(a, b Decimal128) Decimal128 {
	d, err := Multiply(a, b)
	if err != nil {
		panic(fmt.Sprintf("MustMultiply(%v, %v) failed: %v", a, b, err))
	}
	return d
}

// MustDivide is like [Divide] but panics on division by zero or
// overflow.
func MustDivide(dividend Decimal128, dividendRescale int, divisor Decimal128, divisorRescale int) (quotient, remainder Decimal128) {
	q, r, err := Divide(dividend, dividendRescale, divisor, divisorRescale)
	if err != nil {
		panic(fmt.Sprintf("MustDivide(%v, %d, %v, %d) failed: %v", dividend, dividendRescale, divisor, divisorRescale, err))
	}
	return q, r
}

// MustRescale is like [Rescale] but panics on overflow.
func MustRescale(v Decimal128, exponent int) Decimal128 {
	d, err := Rescale(v, exponent)
	if err != nil {
		panic(fmt.Sprintf("MustRescale(%v, %d) failed: %v", v, exponent, err))
	}
	return d
}

// MustFromBigInt is like [FromBigInt] but panics on overflow.
func MustFromBigInt(n *big.Int) Decimal128 {
	d, err := FromBigInt(n)
	if err != nil {
		panic(fmt.Sprintf("MustFromBigInt(%v) failed: %v", n, err))
	}
	return d
}
