package bloomfilter

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Validate reports whether the configuration can back a filter.
func (c Config) Validate() error {
	if c.Bits == 0 {
		return ErrZeroBits
	}
	if c.Bits > math.MaxInt32 {
		return ErrBitsOverflow
	}
	if c.Hashes <= 0 {
		return ErrZeroHashes
	}
	return nil
}

// New builds an empty filter bound to the given hash functions.
// Exactly cfg.Hashes functions must be supplied; the slice is copied, so
// later changes to it do not affect the filter.
func New[T any](cfg Config, hashes []HashFunc[T]) (*Filter[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(hashes) != cfg.Hashes {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrHashCount, len(hashes), cfg.Hashes)
	}
	owned := make([]HashFunc[T], cfg.Hashes)
	for i := range owned {
		if hashes[i] == nil {
			return nil, fmt.Errorf("%w at index %d", ErrNilHash, i)
		}
		owned[i] = hashes[i]
	}
	return &Filter[T]{
		cfg:    cfg,
		bits:   bitset.New(uint(cfg.Bits)),
		hashes: owned,
	}, nil
}

// NewWithHashes is New taking the hash functions as a list of arguments.
func NewWithHashes[T any](cfg Config, hashes ...HashFunc[T]) (*Filter[T], error) {
	return New(cfg, hashes)
}

// position reduces a raw hash to [0, m). Go's % keeps the sign of the
// dividend, so negative remainders are shifted up by m.
func (filter *Filter[T]) position(h int) uint {
	m := int(filter.cfg.Bits)
	r := h % m
	if r < 0 {
		r += m
	}
	return uint(r)
}

// Add inserts value. Every call counts towards Inserted, including
// duplicates. A panicking hash function propagates to the caller and the
// insertion is not counted.
func (filter *Filter[T]) Add(value T) {
	for _, h := range filter.hashes {
		filter.bits.Set(filter.position(h(value)))
	}
	filter.inserted++
}

// ProbablyContains returns false if value was definitely never added, and
// true if it may have been.
func (filter *Filter[T]) ProbablyContains(value T) bool {
	for _, h := range filter.hashes {
		if !filter.bits.Test(filter.position(h(value))) {
			return false
		}
	}
	return true
}

// Locations returns the bit positions value maps to, in hash function order.
func (filter *Filter[T]) Locations(value T) []uint32 {
	locs := make([]uint32, len(filter.hashes))
	for i, h := range filter.hashes {
		locs[i] = uint32(filter.position(h(value)))
	}
	return locs
}

// Inserted is the number of Add calls so far.
func (filter *Filter[T]) Inserted() uint64 {
	return filter.inserted
}

// Bits is the bit array size m.
func (filter *Filter[T]) Bits() uint32 {
	return filter.cfg.Bits
}

// K is the number of hash functions.
func (filter *Filter[T]) K() int {
	return filter.cfg.Hashes
}

// Config returns the filter's shape.
func (filter *Filter[T]) Config() Config {
	return filter.cfg
}

// SetBits counts the bits currently set.
func (filter *Filter[T]) SetBits() uint {
	return filter.bits.Count()
}
