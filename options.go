package bitbuffer

import (
	"github.com/spacemeshos/bitbuffer/shared"
)

type collectionOptions struct {
	// totalBits caps the overall number of bits moved; -1 means no cap for
	// writes and "all remaining up to Count" for reads.
	totalBits int

	// valueBits is the per-value bit budget; -1 means the type's full width.
	valueBits int
}

// Option configures a collection write or read.
type Option func(*collectionOptions) error

// WithTotalBits caps the total number of bits written or read.
func WithTotalBits(numBits int) Option {
	return func(o *collectionOptions) error {
		if numBits < 0 {
			return shared.RangeError{Param: "totalBits", Value: numBits, Min: 0, Max: int(^uint(0) >> 1)}
		}
		o.totalBits = numBits
		return nil
	}
}

// WithValueBits sets how many low-order bits each value contributes,
// instead of the type's full width. Packing 16-bit characters as 8-bit
// bytes is the typical use.
func WithValueBits(numBits int) Option {
	return func(o *collectionOptions) error {
		if numBits < 0 {
			return shared.RangeError{Param: "valueBits", Value: numBits, Min: 0, Max: int(^uint(0) >> 1)}
		}
		o.valueBits = numBits
		return nil
	}
}

func newCollectionOptions(opts []Option) (*collectionOptions, error) {
	o := &collectionOptions{totalBits: -1, valueBits: -1}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
