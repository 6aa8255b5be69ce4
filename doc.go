/*
Package decimal128 implements the arithmetic kernel for a fixed-precision,
128-bit signed decimal coefficient. It stores no scale of its own: callers
pair a [Decimal128] with a scale to get a DECIMAL(p, s) value, the way a SQL
engine's storage layer does, and this package only ever operates on the
unscaled integer coefficient.

# Representation

[Decimal128] is a 16-byte sign-magnitude integer, not a native two's
complement one:

  - 127 bits hold the magnitude.
  - 1 bit, the top bit of the high half, holds the sign (1 = negative).

Zero has a single canonical encoding: all bits clear. No operation in this
package ever produces a "negative zero"; if a computed magnitude is zero,
the sign bit is cleared before the value is returned.

The largest representable magnitude is [MaxUnscaled], 10^38 - 1. Every
public function that could exceed it returns [ErrOverflow] instead of
wrapping or truncating silently.

# Conversions

	| From/to        | Functions                                 |
	| -------------- | ------------------------------------------|
	| big.Int        | [FromBigInt], [ToBigInt]                  |
	| int64          | [FromInt64], [ToInt64]                    |
	| decimal string | [ToUnscaledString]                        |
	| 16-byte wire   | Decimal128.MarshalBinary/UnmarshalBinary  |

Parsing a decimal string literal is deliberately out of scope: this package
converts an already-decoded unscaled coefficient, it does not tokenize
input.

# Operations

Addition, multiplication, division and rescaling are implemented directly
on the 128-bit sign-magnitude layout using 32-bit limb arithmetic.
Addition, multiplication and scaling up do not allocate on the success
path; [Divide], and [Rescale] when scaling down (which divides), allocate
small limb slices for the quotient, remainder and normalized operands.
[Divide] implements Knuth's Algorithm D over base-2^32 limbs,
which is the same algorithm used by arbitrary-precision division
routines. [AddWithOverflow] is the one function that never fails - it
reports overflow as a returned {-1, 0, +1} multiple of 2^127 rather than
an error, for callers that want to sum a long sequence of values and check
for overflow only once at the end.

[Rescale] rounds half-up, away from zero, when scaling down discards
digits: 1.5 rescaled to zero decimal places is 2, and -1.5 is -2. This is
distinct from [ShiftRight]'s roundUp flag, which is sticky-bit rounding
(round if any discarded bit was set) rather than a decimal half-up rule;
the two answer different questions and are not interchangeable.

# Errors

Two sentinel errors cover every failure this package can report:

  - [ErrOverflow]: the mathematically correct result has a magnitude
    exceeding [MaxUnscaled], or a conversion target cannot hold the value.
  - [ErrDivisionByZero]: [Divide] was called with a rescaled divisor of
    zero.

Every other condition - a zero shift count, a zero rescale exponent, a
zero dividend - is a well-defined no-op, not an error.

# Concurrency

Every function is a pure computation over immutable [Decimal128] values,
with two documented exceptions: [ShiftLeftMultiPrecision] and
[ShiftRightMultiPrecision], which mutate a caller-supplied limb buffer in
place. Callers may invoke any function from any number of goroutines on
disjoint inputs and buffers without coordination.
*/
package decimal128
