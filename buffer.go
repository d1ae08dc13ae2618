package bitbuffer

import (
	"github.com/spacemeshos/bitbuffer/shared"
)

// ElementWidth is the number of bits held by one storage element.
const ElementWidth = 8

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// Buffer is a growable sequence of storage elements addressed at bit
// granularity. The zero value is an empty buffer in little-endian bit
// order; New returns the big-endian default.
//
// Bits beyond Count in the last element may hold stale data left behind by
// RemoveRange or TrimEnd. All logical operations ignore them; Data does not.
type Buffer struct {
	elements     []byte
	count        int
	readCursor   int
	writeCursor  int
	lastReadBits int
	bigEndian    bool
}

// New returns an empty buffer following the MSB pattern, where a value's
// most significant bits are written and read first.
func New() *Buffer {
	return &Buffer{bigEndian: true}
}

// NewLittleEndian returns an empty buffer following the LSB pattern, where a
// value's least significant bits are written and read first.
func NewLittleEndian() *Buffer {
	return new(Buffer)
}

// NewFrom returns an independent copy of src holding the same logical
// content: same count, same bit pattern. Stale bits beyond src's count are
// not carried over. The copy's read cursor is 0 and its write cursor is at
// the end.
func NewFrom(src *Buffer) *Buffer {
	out := &Buffer{
		bigEndian:   src.bigEndian,
		count:       src.count,
		writeCursor: src.count,
	}
	n := (src.count + ElementWidth - 1) / ElementWidth
	out.elements = make([]byte, n)
	copy(out.elements, src.elements[:n])
	if rem := src.count % ElementWidth; rem != 0 {
		out.elements[n-1] &= tailMask(rem, src.bigEndian)
	}
	return out
}

// Clone returns a full physical copy of b: elements (stale bits included),
// cursors, count and bit order.
func (b *Buffer) Clone() *Buffer {
	out := *b
	out.elements = make([]byte, len(b.elements))
	copy(out.elements, b.elements)
	return &out
}

// Count returns the number of logically valid bits.
func (b *Buffer) Count() int {
	return b.count
}

// Data returns the complete physical element sequence, including any stale
// bits beyond Count in the last element. The returned slice is a view over
// the buffer's storage, not a copy.
func (b *Buffer) Data() []byte {
	return b.elements
}

// BigEndian reports whether the buffer follows the MSB pattern.
func (b *Buffer) BigEndian() bool {
	return b.bigEndian
}

// ReadCursor returns the read position as a flat bit offset.
func (b *Buffer) ReadCursor() int {
	return b.readCursor
}

// WriteCursor returns the write position as a flat bit offset.
func (b *Buffer) WriteCursor() int {
	return b.writeCursor
}

// LastReadBits returns the number of bits actually consumed by the most
// recent read, which may be less than requested near the end of data.
func (b *Buffer) LastReadBits() int {
	return b.lastReadBits
}

// SetReadCursor repositions the read cursor to the flat bit offset pos.
func (b *Buffer) SetReadCursor(pos int) error {
	if pos < 0 || pos > b.count {
		return shared.RangeError{Param: "readCursor", Value: pos, Min: 0, Max: b.count}
	}
	b.readCursor = pos
	return nil
}

// SetWriteCursor repositions the write cursor to the flat bit offset pos.
// Rewinding the write cursor does not reduce Count; subsequent writes
// overwrite bits in place.
func (b *Buffer) SetWriteCursor(pos int) error {
	if pos < 0 || pos > b.count {
		return shared.RangeError{Param: "writeCursor", Value: pos, Min: 0, Max: b.count}
	}
	b.writeCursor = pos
	return nil
}

// splitOffset decomposes a flat bit offset into its element index and the
// bit position within that element, counting down from ElementWidth-1 (MSB)
// to 0 (LSB) as bits are consumed.
func splitOffset(pos int) (element, bit int) {
	return pos / ElementWidth, ElementWidth - 1 - pos%ElementWidth
}

// grow appends zero elements until the element at index exists.
func (b *Buffer) grow(element int) {
	for element >= len(b.elements) {
		b.elements = append(b.elements, 0)
	}
}

// emptyLike returns an empty buffer with the same bit order as b.
func (b *Buffer) emptyLike() *Buffer {
	return &Buffer{bigEndian: b.bigEndian}
}

// tailMask selects the rem valid bits of a partial trailing element.
func tailMask(rem int, bigEndian bool) byte {
	if bigEndian {
		return byte(0xFF << (ElementWidth - rem))
	}
	return byte(0xFF >> (ElementWidth - rem))
}
