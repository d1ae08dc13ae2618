package bitbuffer

import (
	"github.com/spacemeshos/bitbuffer/shared"
)

// Write packs v at the write cursor using its full width from the width
// table. Equivalent to WriteBits with that width.
func Write[T Scalar](b *Buffer, v T) error {
	width, err := Bits[T]()
	if err != nil {
		return err
	}
	return WriteBits(b, v, width)
}

// WriteBits packs the numBits least significant bits of v at the write
// cursor. In big-endian bit order the most significant of those bits is
// stored first. The write is a partial store: bits outside the targeted
// range keep their previous contents. Storage grows lazily as the write
// crosses the end of the element sequence, and Count is raised whenever the
// write cursor advances past it.
func WriteBits[T Scalar](b *Buffer, v T, numBits int) error {
	width, err := scalarWidth(v)
	if err != nil {
		return err
	}
	if numBits < 0 || numBits > width {
		return shared.RangeError{Param: "numBits", Value: numBits, Min: 0, Max: width}
	}
	val, err := scalarBits(v)
	if err != nil {
		return err
	}
	b.writeBits(val, numBits)
	return nil
}

// WriteBit appends a single bit.
func (b *Buffer) WriteBit(bit Bit) error {
	return WriteBits(b, bool(bit), 1)
}

// WriteByte writes the 8 bits of v, regardless of the alignment.
func (b *Buffer) WriteByte(v byte) error {
	return WriteBits(b, v, 8)
}

// WriteUint64 writes the numBits least significant bits of val.
func (b *Buffer) WriteUint64(val uint64, numBits int) error {
	return WriteBits(b, val, numBits)
}

// writeBits is the codec core. val holds numBits significant bits,
// right-aligned; numBits has been validated to [0, 64].
func (b *Buffer) writeBits(val uint64, numBits int) {
	if numBits == 0 {
		return
	}
	if b.bigEndian {
		// Eliminate unnecessary MS bits, then peel chunks off the top.
		val <<= 64 - uint(numBits)
		for rem := numBits; rem > 0; {
			element, bit := splitOffset(b.writeCursor)
			n := min(rem, bit+1)
			b.grow(element)
			chunk := byte(val >> (64 - n))
			mask := byte(0xFF>>(ElementWidth-n)) << (bit + 1 - n)
			b.elements[element] = b.elements[element]&^mask | chunk<<(bit+1-n)
			val <<= n
			rem -= n
			b.writeCursor += n
		}
	} else {
		// LSB pattern: low bits first, elements fill from bit 0 upward.
		for rem := numBits; rem > 0; {
			element := b.writeCursor / ElementWidth
			used := b.writeCursor % ElementWidth
			n := min(rem, ElementWidth-used)
			b.grow(element)
			chunk := byte(val) & byte(0xFF>>(ElementWidth-n))
			mask := byte(0xFF>>(ElementWidth-n)) << used
			b.elements[element] = b.elements[element]&^mask | chunk<<used
			val >>= n
			rem -= n
			b.writeCursor += n
		}
	}
	if b.writeCursor > b.count {
		b.count = b.writeCursor
	}
}
