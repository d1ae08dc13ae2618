package bitbuffer

import (
	"fmt"

	"github.com/spacemeshos/bitbuffer/shared"
)

// Scalar is the closed set of types a buffer can pack and unpack. Unsigned
// integers use their full native width; signed integers use one bit less,
// since the sign bit is never stored and only non-negative magnitudes are
// representable; bool is a single bit.
//
// The constraint admits defined types (`type Flag bool`), but the width
// table does not: anything outside the exact set fails with
// shared.UnsupportedTypeError at run time, before any storage is touched.
type Scalar interface {
	~bool | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// Bits returns the bit width of T from the static width table.
func Bits[T Scalar]() (int, error) {
	var zero T
	return scalarWidth(zero)
}

func scalarWidth(v any) (int, error) {
	switch v.(type) {
	case bool:
		return 1, nil
	case uint8:
		return 8, nil
	case uint16:
		return 16, nil
	case uint32:
		return 32, nil
	case uint64:
		return 64, nil
	case int8:
		return 7, nil
	case int16:
		return 15, nil
	case int32:
		return 31, nil
	case int64:
		return 63, nil
	default:
		return 0, shared.UnsupportedTypeError{Type: fmt.Sprintf("%T", v)}
	}
}

// scalarBits extracts the unsigned magnitude of v. Negative values of the
// signed types cannot be packed.
func scalarBits(v any) (uint64, error) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case uint8:
		return uint64(x), nil
	case uint16:
		return uint64(x), nil
	case uint32:
		return uint64(x), nil
	case uint64:
		return x, nil
	case int8:
		if x < 0 {
			return 0, shared.NegativeValueError{Param: "value", Value: int64(x)}
		}
		return uint64(x), nil
	case int16:
		if x < 0 {
			return 0, shared.NegativeValueError{Param: "value", Value: int64(x)}
		}
		return uint64(x), nil
	case int32:
		if x < 0 {
			return 0, shared.NegativeValueError{Param: "value", Value: int64(x)}
		}
		return uint64(x), nil
	case int64:
		if x < 0 {
			return 0, shared.NegativeValueError{Param: "value", Value: x}
		}
		return uint64(x), nil
	default:
		return 0, shared.UnsupportedTypeError{Type: fmt.Sprintf("%T", v)}
	}
}

// scalarFromBits converts the low bits of acc back into T. Only called for
// types that passed the width table, so the assertions cannot fail.
func scalarFromBits[T Scalar](acc uint64) T {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(acc != 0).(T)
	case uint8:
		return any(uint8(acc)).(T)
	case uint16:
		return any(uint16(acc)).(T)
	case uint32:
		return any(uint32(acc)).(T)
	case uint64:
		return any(acc).(T)
	case int8:
		return any(int8(acc)).(T)
	case int16:
		return any(int16(acc)).(T)
	case int32:
		return any(int32(acc)).(T)
	case int64:
		return any(int64(acc)).(T)
	default:
		return zero
	}
}
