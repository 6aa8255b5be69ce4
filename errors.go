package decimal128

import "errors"

// ErrOverflow is returned when the mathematically correct result of an
// operation has a magnitude exceeding MaxUnscaled, or when a conversion
// target cannot hold the value.
var ErrOverflow = errors.New("Decimal overflow")

// ErrDivisionByZero is returned by Divide when the rescaled divisor is
// zero.
var ErrDivisionByZero = errors.New("division by zero")
