package decimal128

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
)

// signBit is bit 63 of hi, the sign bit of the 127-bit sign-magnitude
// layout described in the package doc.
const signBit = uint64(1) << 63

// Decimal128 is a signed 128-bit unscaled decimal coefficient stored in
// sign-magnitude form: 127 bits of magnitude plus one sign bit, instead
// of two's-complement. lo holds bits 0..63 of the magnitude; hi holds
// bits 64..126 of the magnitude in its low 63 bits, with bit 63 of hi
// reserved for the sign (1 = negative).
//
// The zero value of Decimal128 is the canonical decimal zero.
type Decimal128 struct {
	lo uint64
	hi uint64
}

// MaxUnscaled is the largest magnitude a Decimal128 can represent,
// 10^38 - 1.
var MaxUnscaled = mustFromBigString("99999999999999999999999999999999999999")

// MinUnscaled is -MaxUnscaled.
var MinUnscaled = Negate(MaxUnscaled)

// Zero is the canonical zero value.
var Zero = Decimal128{}

func mustFromBigString(s string) Decimal128 {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("decimal128: invalid literal %q", s))
	}
	d, err := FromBigInt(n)
	if err != nil {
		panic(err)
	}
	return d
}

// NewEmpty returns a zeroed Decimal128 suitable as a destination for a
// destructive operation.
func NewEmpty() Decimal128 {
	return Decimal128{}
}

// Low64 and High64 give access to the derived (low64, high64) view
// described in the package doc: Low64 is the low 64 bits of the
// magnitude, High64 is the high 63 bits of the magnitude with the sign
// bit still embedded at bit 63. This is the same split ThrowIfOverflowsLongs
// takes as arguments, for callers that assemble a result in registers
// before deciding whether to materialize a Decimal128.
func (d Decimal128) Low64() uint64  { return d.lo }
func (d Decimal128) High64() uint64 { return d.hi }

// IsNegative reports whether d is negative. Zero is never negative.
func (d Decimal128) IsNegative() bool {
	return d.hi&signBit != 0
}

// IsZero reports whether d is the canonical zero.
func (d Decimal128) IsZero() bool {
	return d.lo == 0 && d.hi&^signBit == 0
}

// sign returns -1, 0 or 1.
func (d Decimal128) sign() int {
	if d.IsZero() {
		return 0
	}
	if d.IsNegative() {
		return -1
	}
	return 1
}

// magnitudeHi returns the high 63 bits of the magnitude, with the sign
// bit masked off.
func (d Decimal128) magnitudeHi() uint64 {
	return d.hi &^ signBit
}

// withSign builds a Decimal128 from an unsigned 127-bit magnitude
// (lo, magHi) and a boolean sign flag. Magnitude zero always yields a
// positive value, per the canonical-zero invariant.
func withSign(lo, magHi uint64, negative bool) Decimal128 {
	d := Decimal128{lo: lo, hi: magHi &^ signBit}
	if negative && !d.IsZero() {
		d.hi |= signBit
	}
	return d
}

// Negate returns -d. Negating zero yields zero.
func Negate(d Decimal128) Decimal128 {
	if d.IsZero() {
		return Zero
	}
	return Decimal128{lo: d.lo, hi: d.hi ^ signBit}
}

// Compare returns -1, 0 or 1 as d1 is less than, equal to, or greater
// than d2. It is a total order consistent with the values' big.Int
// interpretation.
func Compare(d1, d2 Decimal128) int {
	s1, s2 := d1.sign(), d2.sign()
	if s1 != s2 {
		if s1 < s2 {
			return -1
		}
		return 1
	}
	if s1 == 0 {
		return 0
	}
	c := cmpMag(d1, d2)
	if s1 < 0 {
		c = -c
	}
	return c
}

// cmpMag compares the magnitudes of d1 and d2, ignoring sign.
func cmpMag(d1, d2 Decimal128) int {
	h1, h2 := d1.magnitudeHi(), d2.magnitudeHi()
	switch {
	case h1 < h2:
		return -1
	case h1 > h2:
		return 1
	case d1.lo < d2.lo:
		return -1
	case d1.lo > d2.lo:
		return 1
	default:
		return 0
	}
}

// FromInt64 converts a signed 64-bit integer to Decimal128. It always
// succeeds.
func FromInt64(n int64) Decimal128 {
	negative := n < 0
	var mag uint64
	if negative {
		mag = uint64(-(n + 1)) + 1 // avoids overflow for math.MinInt64
	} else {
		mag = uint64(n)
	}
	return withSign(mag, 0, negative)
}

// ToInt64 converts d to a signed 64-bit integer. It fails with
// ErrOverflow if d lies outside the int64 range: a magnitude above
// 2^63 - 1 fails, except that -2^63 (math.MinInt64) is accepted.
func ToInt64(d Decimal128) (int64, error) {
	if d.magnitudeHi() != 0 {
		return 0, fmt.Errorf("decimal128: convert %s to int64: %w", ToUnscaledString(d), ErrOverflow)
	}
	if d.lo > 1<<63 {
		return 0, fmt.Errorf("decimal128: convert %s to int64: %w", ToUnscaledString(d), ErrOverflow)
	}
	if d.lo == 1<<63 {
		if !d.IsNegative() {
			return 0, fmt.Errorf("decimal128: convert %s to int64: %w", ToUnscaledString(d), ErrOverflow)
		}
		return minInt64, nil
	}
	n := int64(d.lo)
	if d.IsNegative() {
		n = -n
	}
	return n, nil
}

const minInt64 = -1 << 63

// FromBigInt converts an arbitrary-precision integer to Decimal128. It
// fails with ErrOverflow if the magnitude exceeds MaxUnscaled.
func FromBigInt(n *big.Int) (Decimal128, error) {
	if n.BitLen() > 127 {
		return Zero, fmt.Errorf("decimal128: convert %s: %w", n.String(), ErrOverflow)
	}
	mag := new(big.Int).Abs(n)
	var buf [16]byte
	mag.FillBytes(buf[:])
	hi := binary.BigEndian.Uint64(buf[0:8])
	lo := binary.BigEndian.Uint64(buf[8:16])
	if hi&signBit != 0 {
		return Zero, fmt.Errorf("decimal128: convert %s: %w", n.String(), ErrOverflow)
	}
	d := withSign(lo, hi, n.Sign() < 0)
	if Overflows(d, 38) {
		return Zero, fmt.Errorf("decimal128: convert %s: %w", n.String(), ErrOverflow)
	}
	return d, nil
}

// ToBigInt converts d to an arbitrary-precision integer, exactly.
func ToBigInt(d Decimal128) *big.Int {
	lo := new(big.Int).SetUint64(d.lo)
	hi := new(big.Int).SetUint64(d.magnitudeHi())
	hi.Lsh(hi, 64)
	hi.Or(hi, lo)
	if d.IsNegative() {
		hi.Neg(hi)
	}
	return hi
}

// MarshalBinary implements encoding.BinaryMarshaler, producing the
// normative 16-byte little-endian sign-magnitude layout: bytes 0..7 are
// the low 64 bits of the magnitude, bytes 8..15 are the high 63 bits of
// the magnitude with the sign bit at bit 7 of byte 15.
func (d Decimal128) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[0:8], d.Low64())
	binary.LittleEndian.PutUint64(buf[8:16], d.High64())
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler for the layout
// documented on MarshalBinary. A magnitude-zero value with the sign bit
// set is rejected, per the no-negative-zero invariant.
func (d *Decimal128) UnmarshalBinary(buf []byte) error {
	if len(buf) != 16 {
		return fmt.Errorf("decimal128: unmarshal binary: want 16 bytes, got %d", len(buf))
	}
	lo := binary.LittleEndian.Uint64(buf[0:8])
	hi := binary.LittleEndian.Uint64(buf[8:16])
	v := Decimal128{lo: lo, hi: hi}
	if v.hi&signBit != 0 && v.lo == 0 && v.hi&^signBit == 0 {
		return errors.New("decimal128: unmarshal binary: negative zero is not a valid encoding")
	}
	*d = v
	return nil
}

// String implements fmt.Stringer, returning the same text as
// ToUnscaledString.
func (d Decimal128) String() string {
	return ToUnscaledString(d)
}
