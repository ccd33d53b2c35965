package bloomfilter

import "math"

// ErrorRate estimates the false positive probability from the number of
// insertions n:
//
//	(1 - e^(-k*n/m))^k
//
// It assumes uniformly distributed hashes and never looks at the bit
// array, so it is an approximation rather than a measurement. Duplicate
// insertions count as new items. An empty filter reports 0.
func (filter *Filter[T]) ErrorRate() float64 {
	if filter.inserted == 0 {
		return 0
	}
	k := float64(filter.cfg.Hashes)
	m := float64(filter.cfg.Bits)
	n := float64(filter.inserted)
	return math.Pow(1-math.Exp(-k*n/m), k)
}

// FillRatio is the fraction of bits currently set.
func (filter *Filter[T]) FillRatio() float64 {
	return float64(filter.bits.Count()) / float64(filter.cfg.Bits)
}

// MeasuredErrorRate computes the false positive probability from the bits
// actually set, (set/m)^k. Unlike ErrorRate it reflects duplicates and
// hash collisions, but it still assumes a fresh lookup lands on uniformly
// random positions.
func (filter *Filter[T]) MeasuredErrorRate() float64 {
	return math.Pow(filter.FillRatio(), float64(filter.cfg.Hashes))
}
