// Package bitbuffer provides an in-memory, bit-addressable buffer with
// variable-granularity access: values of 1 to 64 bits may be appended from
// any of the supported scalar types and later re-read in chunks of arbitrary
// width, independent of how the bits were originally grouped.
//
// By default the buffer follows the MSB pattern ("big-endian bit order"),
// where a value's most significant bits are stored first, so bit positions
// never move when the stream is re-read at a different granularity.
// NewLittleEndian yields a buffer following the LSB pattern instead.
//
// A Buffer is not safe for concurrent use. Reads from the lazy sequences
// produced by ReadValues share the buffer's read cursor; take a copy via
// NewFrom or Clone before iterating concurrently or re-entrantly.
package bitbuffer
