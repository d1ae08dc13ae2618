package bitbuffer

import (
	"github.com/spacemeshos/bitbuffer/shared"
)

// Insert returns a new buffer holding b's bits [0, index), then all of ins,
// then b's bits [index, Count). Neither b nor ins is mutated; their read
// cursors are restored even on failure. The result inherits b's bit order;
// ins is read under its own order, so logical values survive a mixed-order
// splice.
func (b *Buffer) Insert(index int, ins *Buffer) (*Buffer, error) {
	if index < 0 || index > b.count {
		return nil, shared.RangeError{Param: "index", Value: index, Min: 0, Max: b.count}
	}

	defer func(pos int) { b.readCursor = pos }(b.readCursor)
	defer func(pos int) { ins.readCursor = pos }(ins.readCursor)

	out := b.emptyLike()
	b.readCursor = 0
	copyBits(out, b, index)
	ins.readCursor = 0
	copyBits(out, ins, ins.count)
	copyBits(out, b, b.count-index)
	return out, nil
}

// InsertValue inserts the numBits least significant bits of v at bit offset
// index, by packing the value into a scratch buffer and delegating to
// Insert.
func InsertValue[T Scalar](b *Buffer, index int, v T, numBits int) (*Buffer, error) {
	scratch := b.emptyLike()
	if err := WriteBits(scratch, v, numBits); err != nil {
		return nil, err
	}
	return b.Insert(index, scratch)
}

// RemoveRange returns a new buffer with bits [index, index+numBits) excised.
// Removing a pure suffix is a logical truncation: the copy keeps the
// physical elements and only lowers Count, leaving stale bits behind (Equal
// ignores them, Data does not).
func (b *Buffer) RemoveRange(index, numBits int) (*Buffer, error) {
	if numBits < 0 {
		return nil, shared.RangeError{Param: "numBits", Value: numBits, Min: 0, Max: b.count}
	}
	if index < 0 || index > b.count {
		return nil, shared.RangeError{Param: "index", Value: index, Min: 0, Max: b.count}
	}
	if index+numBits > b.count {
		return nil, shared.RangeError{Param: "numBits", Value: numBits, Min: 0, Max: b.count - index}
	}

	if index+numBits == b.count {
		out := b.Clone()
		out.count = b.count - numBits
		out.writeCursor = out.count
		if out.readCursor > out.count {
			out.readCursor = out.count
		}
		return out, nil
	}

	defer func(pos int) { b.readCursor = pos }(b.readCursor)

	out := b.emptyLike()
	b.readCursor = 0
	copyBits(out, b, index)
	b.readCursor = index + numBits
	copyBits(out, b, b.count-index-numBits)
	return out, nil
}

// TrimEnd returns a new buffer with the trailing numBits bits removed.
func (b *Buffer) TrimEnd(numBits int) (*Buffer, error) {
	if numBits < 0 || numBits > b.count {
		return nil, shared.RangeError{Param: "numBits", Value: numBits, Min: 0, Max: b.count}
	}
	return b.RemoveRange(b.count-numBits, numBits)
}

// copyBits moves numBits bits from src's read cursor into dst, in chunks
// that preserve the exact widths read, so runs crossing element boundaries
// are not re-aligned. Reads are bounded by src's Count, not its write
// cursor, since edits must see the whole logical content.
func copyBits(dst, src *Buffer, numBits int) {
	for numBits > 0 {
		acc, got := src.readBits(min(numBits, 64), src.count)
		if got == 0 {
			return
		}
		dst.writeBits(acc, got)
		numBits -= got
	}
}
