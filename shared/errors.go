package shared

import (
	"fmt"
)

// RangeError indicates that a bit-count or cursor argument fell outside its
// valid bounds. The operation that returned it did not mutate the buffer.
type RangeError struct {
	Param string
	Value int
	Min   int
	Max   int
}

func (err RangeError) Error() string {
	return fmt.Sprintf("invalid `%v`; expected: %v <= value <= %v, given: %v",
		err.Param, err.Min, err.Max, err.Value)
}

// NegativeValueError indicates that a negative value was passed to a packing
// operation. Only unsigned magnitudes are representable in the bit stream.
type NegativeValueError struct {
	Param string
	Value int64
}

func (err NegativeValueError) Error() string {
	return fmt.Sprintf("invalid `%v`; expected: a non-negative value, given: %v",
		err.Param, err.Value)
}

// UnsupportedTypeError indicates that a scalar type is absent from the bit
// width table. It is returned before any storage is touched.
type UnsupportedTypeError struct {
	Type string
}

func (err UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported scalar type: %v", err.Type)
}
