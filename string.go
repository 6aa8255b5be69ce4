package decimal128

// ToUnscaledString returns the decimal representation of the signed
// unscaled integer d, with a leading "-" for negative values and no
// other formatting. Zero is "0".
func ToUnscaledString(d Decimal128) string {
	if d.IsZero() {
		return "0"
	}
	b := getBint()
	defer putBint(b)
	b.setMagnitude(d.lo, d.magnitudeHi())
	s := b.string()
	if d.IsNegative() {
		return "-" + s
	}
	return s
}
