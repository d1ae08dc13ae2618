package shared

import (
	"math/bits"
)

// NumBits returns the minimal number of bits required to represent val.
// Zero still occupies one bit.
func NumBits(val uint64) int {
	if val == 0 {
		return 1
	}
	return bits.Len64(val)
}
