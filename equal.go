package bitbuffer

import (
	"bytes"
)

// Equal reports whether other holds the same logical content as b: same
// count, same bit order, same bits within [0, Count). Stale bits beyond
// Count in a partial trailing element never affect the comparison.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || other.count != b.count || other.bigEndian != b.bigEndian {
		return false
	}
	if b.count == 0 {
		return true
	}
	whole := b.count / ElementWidth
	if !bytes.Equal(b.elements[:whole], other.elements[:whole]) {
		return false
	}
	rem := b.count % ElementWidth
	if rem == 0 {
		return true
	}
	mask := tailMask(rem, b.bigEndian)
	return b.elements[whole]&mask == other.elements[whole]&mask
}
