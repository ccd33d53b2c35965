package bloomfilter

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// HashFunc maps an item to a signed integer. Results may be negative and
// need not be smaller than the filter size; the filter reduces them.
type HashFunc[T any] func(T) int

// Config fixes the shape of a filter: Bits is m, Hashes is k.
type Config struct {
	Bits   uint32
	Hashes int
}

// DefaultConfig is a 10-bit array indexed by 3 hash functions.
var DefaultConfig = Config{Bits: 10, Hashes: 3}

var (
	ErrZeroBits     = errors.New("bloomfilter: bit array size must be positive")
	ErrBitsOverflow = errors.New("bloomfilter: bit array size overflows supported range")
	ErrZeroHashes   = errors.New("bloomfilter: hash function count must be positive")
	ErrHashCount    = errors.New("bloomfilter: hash function count does not match configuration")
	ErrNilHash      = errors.New("bloomfilter: nil hash function")
)

// Filter is a Bloom filter over items of type T. It is not safe for
// concurrent use.
type Filter[T any] struct {
	cfg      Config
	bits     *bitset.BitSet
	hashes   []HashFunc[T]
	inserted uint64
}
