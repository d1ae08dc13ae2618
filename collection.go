package bitbuffer

import (
	"iter"

	"github.com/spacemeshos/bitbuffer/shared"
)

// WriteValues packs values at the write cursor. Each value contributes its
// full width by default, or WithValueBits low-order bits; with
// WithTotalBits the final contributing value is clipped so the running
// total never exceeds the cap, and values past the budget are not touched.
// The type check happens once, up front, before any bit is written.
//
// Boolean runs bypass the per-value codec path: bits are packed into a
// 64-bit accumulator and flushed at word granularity.
func WriteValues[T Scalar](b *Buffer, values []T, opts ...Option) error {
	o, err := newCollectionOptions(opts)
	if err != nil {
		return err
	}
	width, err := Bits[T]()
	if err != nil {
		return err
	}
	valueBits := o.valueBits
	if valueBits < 0 {
		valueBits = width
	}
	if valueBits > width {
		return shared.RangeError{Param: "valueBits", Value: valueBits, Min: 0, Max: width}
	}

	if width == 1 && valueBits == 1 {
		return writeBools(b, values, o.totalBits)
	}

	written := 0
	for _, v := range values {
		if o.totalBits >= 0 && written >= o.totalBits {
			break
		}
		n := valueBits
		if o.totalBits >= 0 && written+n > o.totalBits {
			n = o.totalBits - written
		}
		if err := WriteBits(b, v, n); err != nil {
			return err
		}
		written += n
	}
	return nil
}

// writeBools packs single-bit values through an accumulator, avoiding a
// codec call per bit.
func writeBools[T Scalar](b *Buffer, values []T, totalBits int) error {
	numBits := len(values)
	if totalBits >= 0 && totalBits < numBits {
		numBits = totalBits
	}
	var acc uint64
	accBits := 0
	for i := 0; i < numBits; i++ {
		bit, err := scalarBits(values[i])
		if err != nil {
			return err
		}
		// The accumulator mirrors the buffer's bit order so that flushing
		// through writeBits emits values[0] first either way.
		if b.bigEndian {
			acc = acc<<1 | bit
		} else {
			acc |= bit << accBits
		}
		accBits++
		if accBits == 64 {
			b.writeBits(acc, 64)
			acc, accBits = 0, 0
		}
	}
	b.writeBits(acc, accBits)
	return nil
}

// ReadValues returns a lazy sequence of (value, bitsRead) pairs unpacked
// from the read cursor. Each pull performs one codec read of the per-value
// width, or of the remainder on the final pull; the default total is all
// remaining bits between the read cursor and Count. The sequence is
// single-pass and stateful over the shared read cursor: it must not be
// iterated concurrently with other reads of the same buffer, and
// LastReadBits reflects each element as it is produced.
func ReadValues[T Scalar](b *Buffer, opts ...Option) (iter.Seq2[T, int], error) {
	o, err := newCollectionOptions(opts)
	if err != nil {
		return nil, err
	}
	width, err := Bits[T]()
	if err != nil {
		return nil, err
	}
	valueBits := o.valueBits
	if valueBits < 0 {
		valueBits = width
	}
	if valueBits > width {
		return nil, shared.RangeError{Param: "valueBits", Value: valueBits, Min: 0, Max: width}
	}
	total := o.totalBits
	if total < 0 {
		total = b.count - b.readCursor
	}

	seq := func(yield func(T, int) bool) {
		for remaining := total; remaining > 0; {
			n := min(valueBits, remaining)
			acc, got := b.readBits(n, b.count)
			b.lastReadBits = got
			if got == 0 {
				return
			}
			if b.bigEndian {
				acc <<= uint(width - got)
			}
			if !yield(scalarFromBits[T](acc), got) {
				return
			}
			remaining -= got
		}
	}
	return seq, nil
}

// FromValues builds a buffer in big-endian bit order by packing values
// through WriteValues.
func FromValues[T Scalar](values []T, opts ...Option) (*Buffer, error) {
	b := New()
	if err := WriteValues(b, values, opts...); err != nil {
		return nil, err
	}
	return b, nil
}
