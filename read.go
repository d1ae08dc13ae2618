package bitbuffer

import (
	"github.com/spacemeshos/bitbuffer/shared"
)

// Read unpacks a value of T's full width from the read cursor. Equivalent to
// ReadBits with that width.
func Read[T Scalar](b *Buffer) (T, int, error) {
	width, err := Bits[T]()
	if err != nil {
		var zero T
		return zero, 0, err
	}
	return ReadBits[T](b, width)
}

// ReadBits unpacks up to numBits bits starting at the read cursor and
// returns the value together with the number of bits actually consumed.
// When fewer bits remain between the read and write cursors the request is
// silently truncated; running off the end is never an error. A zero-bit
// request is a no-op returning the zero value.
//
// In big-endian bit order the result is left-aligned within T's width from
// the width table, so reading 3 bits `101` into a byte yields 0b1010_0000
// and bit positions survive re-reads at other granularities. In
// little-endian order the result is right-aligned.
func ReadBits[T Scalar](b *Buffer, numBits int) (T, int, error) {
	var zero T
	width, err := scalarWidth(zero)
	if err != nil {
		return zero, 0, err
	}
	if numBits < 0 || numBits > width {
		return zero, 0, shared.RangeError{Param: "numBits", Value: numBits, Min: 0, Max: width}
	}
	acc, n := b.readBits(numBits, b.writeCursor)
	b.lastReadBits = n
	if n == 0 {
		return zero, 0, nil
	}
	if b.bigEndian {
		acc <<= uint(width - n)
	}
	return scalarFromBits[T](acc), n, nil
}

// ReadBit consumes a single bit, reporting 0 bits read at end of data.
func (b *Buffer) ReadBit() (Bit, int) {
	v, n, _ := ReadBits[bool](b, 1)
	return Bit(v), n
}

// ReadByte consumes up to 8 bits, regardless of the alignment.
func (b *Buffer) ReadByte() (byte, int) {
	v, n, _ := ReadBits[uint8](b, 8)
	return v, n
}

// ReadUint64 consumes up to numBits bits as a uint64.
func (b *Buffer) ReadUint64(numBits int) (uint64, int, error) {
	return ReadBits[uint64](b, numBits)
}

// readBits is the codec core, the mirror loop of writeBits. It gathers up to
// numBits bits into a right-aligned accumulator, clamped so the read cursor
// never passes the flat offset limit, and reports the bits consumed.
func (b *Buffer) readBits(numBits, limit int) (uint64, int) {
	if avail := limit - b.readCursor; numBits > avail {
		numBits = avail
	}
	if numBits <= 0 {
		return 0, 0
	}
	var acc uint64
	for read := 0; read < numBits; {
		element := b.readCursor / ElementWidth
		used := b.readCursor % ElementWidth
		n := min(numBits-read, ElementWidth-used)
		if b.bigEndian {
			chunk := (b.elements[element] >> (ElementWidth - used - n)) & byte(0xFF>>(ElementWidth-n))
			acc = acc<<n | uint64(chunk)
		} else {
			chunk := (b.elements[element] >> used) & byte(0xFF>>(ElementWidth-n))
			acc |= uint64(chunk) << read
		}
		read += n
		b.readCursor += n
	}
	return acc, numBits
}
