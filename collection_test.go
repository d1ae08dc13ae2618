package bitbuffer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/bitbuffer"
	"github.com/spacemeshos/bitbuffer/shared"
)

func readBools(req *require.Assertions, buf *bitbuffer.Buffer) []bool {
	req.NoError(buf.SetReadCursor(0))
	seq, err := bitbuffer.ReadValues[bool](buf)
	req.NoError(err)

	out := []bool{}
	for v, n := range seq {
		req.Equal(1, n)
		out = append(out, v)
	}
	return out
}

func TestWriteValues_Bytes(t *testing.T) {
	req := require.New(t)

	buf, err := bitbuffer.FromValues([]uint8{0xAA, 0xBB, 0xCC})
	req.NoError(err)
	req.Equal(24, buf.Count())
	req.Equal([]byte{0xAA, 0xBB, 0xCC}, buf.Data())
}

func TestWriteValues_Booleans(t *testing.T) {
	req := require.New(t)

	buf, err := bitbuffer.FromValues([]bool{true, false, true})
	req.NoError(err)
	req.Equal(3, buf.Count())
	req.Equal([]byte{0b1010_0000}, buf.Data())

	// A run longer than the accumulator word.
	bools := make([]bool, 150)
	for i := range bools {
		bools[i] = i%3 == 0
	}
	buf, err = bitbuffer.FromValues(bools)
	req.NoError(err)
	req.Equal(150, buf.Count())
	req.Equal(bools, readBools(req, buf))
}

func TestWriteValues_BooleansLittleEndian(t *testing.T) {
	req := require.New(t)

	buf := bitbuffer.NewLittleEndian()
	req.NoError(bitbuffer.WriteValues(buf, []bool{true, false, false, true}))
	req.Equal(4, buf.Count())
	req.Equal([]byte{0b0000_1001}, buf.Data())
	req.Equal([]bool{true, false, false, true}, readBools(req, buf))
}

// Packing 16-bit values as 8-bit bytes via the per-value budget.
func TestWriteValues_ValueBits(t *testing.T) {
	req := require.New(t)

	buf, err := bitbuffer.FromValues([]uint16{0x41, 0x42}, bitbuffer.WithValueBits(8))
	req.NoError(err)
	req.Equal(16, buf.Count())
	req.Equal([]byte{0x41, 0x42}, buf.Data())
}

func TestWriteValues_TotalBits(t *testing.T) {
	req := require.New(t)

	// The final contributing value is clipped to its low-order bits; the
	// rest of the source is never consumed.
	buf, err := bitbuffer.FromValues([]uint8{0xFF, 0xFF, 0xFF}, bitbuffer.WithTotalBits(12))
	req.NoError(err)
	req.Equal(12, buf.Count())
	req.Equal([]byte{0xFF, 0xF0}, buf.Data())

	buf, err = bitbuffer.FromValues([]bool{true, true, true}, bitbuffer.WithTotalBits(2))
	req.NoError(err)
	req.Equal(2, buf.Count())
	req.Equal([]byte{0b1100_0000}, buf.Data())
}

func TestWriteValues_BadOptions(t *testing.T) {
	req := require.New(t)

	buf := bitbuffer.New()
	var rangeErr shared.RangeError

	err := bitbuffer.WriteValues(buf, []uint8{1}, bitbuffer.WithTotalBits(-1))
	req.ErrorAs(err, &rangeErr)
	req.Equal("totalBits", rangeErr.Param)

	err = bitbuffer.WriteValues(buf, []uint8{1}, bitbuffer.WithValueBits(-8))
	req.ErrorAs(err, &rangeErr)
	req.Equal("valueBits", rangeErr.Param)

	req.Equal(0, buf.Count())
}

// The type check is eager: it fails before anything is written, even when
// no value would have been consumed.
func TestWriteValues_UnsupportedType(t *testing.T) {
	req := require.New(t)

	buf := bitbuffer.New()
	var unsupportedErr shared.UnsupportedTypeError

	err := bitbuffer.WriteValues(buf, []flag{true}, bitbuffer.WithTotalBits(0))
	req.ErrorAs(err, &unsupportedErr)

	_, err = bitbuffer.ReadValues[flag](buf)
	req.ErrorAs(err, &unsupportedErr)

	req.Equal(0, buf.Count())
}

// Reading bytes through the lazy sequence matches manually pulling
// min(8, remaining) bits at a time.
func TestReadValues_MatchesManualReads(t *testing.T) {
	req := require.New(t)

	type chunk struct {
		val  uint8
		bits int
	}

	buf, err := bitbuffer.FromValues([]uint8{0xAA, 0xBB, 0xCC})
	req.NoError(err)
	req.NoError(buf.SetReadCursor(4))

	seq, err := bitbuffer.ReadValues[uint8](buf)
	req.NoError(err)
	var lazy []chunk
	for v, n := range seq {
		req.Equal(n, buf.LastReadBits())
		lazy = append(lazy, chunk{v, n})
	}

	req.NoError(buf.SetReadCursor(4))
	var manual []chunk
	for {
		remaining := buf.Count() - buf.ReadCursor()
		if remaining == 0 {
			break
		}
		v, n, err := bitbuffer.ReadBits[uint8](buf, min(8, remaining))
		req.NoError(err)
		req.NotZero(n)
		manual = append(manual, chunk{v, n})
	}

	req.Equal(manual, lazy)
	req.Equal([]chunk{{0xAB, 8}, {0xBC, 8}, {0xC0, 4}}, lazy)
}

func TestReadValues_TotalBits(t *testing.T) {
	req := require.New(t)

	buf, err := bitbuffer.FromValues([]uint8{0xAA, 0xBB})
	req.NoError(err)
	req.NoError(buf.SetReadCursor(0))

	seq, err := bitbuffer.ReadValues[uint8](buf, bitbuffer.WithTotalBits(12))
	req.NoError(err)
	var got []uint8
	for v := range seq {
		got = append(got, v)
	}
	req.Equal([]uint8{0xAA, 0xB0}, got)
	req.Equal(12, buf.ReadCursor())

	// A budget beyond the data truncates silently.
	req.NoError(buf.SetReadCursor(0))
	seq, err = bitbuffer.ReadValues[uint8](buf, bitbuffer.WithTotalBits(64))
	req.NoError(err)
	count := 0
	for range seq {
		count++
	}
	req.Equal(2, count)
}

// Collection reads see the full logical content even when the write cursor
// has been rewound.
func TestReadValues_RewoundWriteCursor(t *testing.T) {
	req := require.New(t)

	buf, err := bitbuffer.FromValues([]uint8{0xAB, 0xCD})
	req.NoError(err)
	req.NoError(buf.SetWriteCursor(8))
	req.NoError(buf.SetReadCursor(0))

	seq, err := bitbuffer.ReadValues[uint8](buf)
	req.NoError(err)
	var got []uint8
	for v := range seq {
		got = append(got, v)
	}
	req.Equal([]uint8{0xAB, 0xCD}, got)
}

// Lazy sequences share the buffer's read cursor, so concurrent readers must
// each take their own copy first.
func TestReadValues_ConcurrentClones(t *testing.T) {
	req := require.New(t)

	base, err := bitbuffer.FromValues([]uint8{0xDE, 0xAD, 0xBE, 0xEF})
	req.NoError(err)

	var eg errgroup.Group
	for i := 0; i < 4; i++ {
		cp := bitbuffer.NewFrom(base)
		eg.Go(func() error {
			seq, err := bitbuffer.ReadValues[uint8](cp)
			if err != nil {
				return err
			}
			var got []uint8
			for v := range seq {
				got = append(got, v)
			}
			require.Equal(t, []uint8{0xDE, 0xAD, 0xBE, 0xEF}, got)
			return nil
		})
	}
	req.NoError(eg.Wait())
}
