package bloomfilter

import (
	"github.com/cespare/xxhash"
	"github.com/spaolacci/murmur3"
)

func murmur64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// returns random number, modifies the seed
func splitmix64(seed *uint64) uint64 {
	*seed = *seed + 0x9E3779B97F4A7C15
	z := *seed
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func mixsplit(key, seed uint64) uint64 {
	return murmur64(key + seed)
}

// Uint64Hashes returns k independent hash functions over uint64 keys. Each
// function mixes the key with its own seed drawn from seed, so the same
// seed always yields the same ensemble.
func Uint64Hashes(k int, seed uint64) []HashFunc[uint64] {
	if k <= 0 {
		return nil
	}
	hashes := make([]HashFunc[uint64], k)
	for i := range hashes {
		s := splitmix64(&seed)
		hashes[i] = func(key uint64) int {
			return int(mixsplit(key, s))
		}
	}
	return hashes
}

// doubleHash derives the i-th hash from two base hashes
// (Kirsch-Mitzenmacher): g_i = h1 + i*h2.
func doubleHash(h1, h2 uint64, i int) int {
	return int(h1 + uint64(i)*h2)
}

// BytesHashes returns k hash functions over byte slices built from xxhash
// and murmur3 by double hashing.
func BytesHashes(k int) []HashFunc[[]byte] {
	if k <= 0 {
		return nil
	}
	hashes := make([]HashFunc[[]byte], k)
	for i := range hashes {
		hashes[i] = bytesHashAt(i)
	}
	return hashes
}

// StringHashes is BytesHashes for strings.
func StringHashes(k int) []HashFunc[string] {
	if k <= 0 {
		return nil
	}
	hashes := make([]HashFunc[string], k)
	for i := range hashes {
		hashes[i] = stringHashAt(i)
	}
	return hashes
}

func bytesHashAt(i int) HashFunc[[]byte] {
	return func(data []byte) int {
		return doubleHash(xxhash.Sum64(data), murmur3.Sum64(data), i)
	}
}

func stringHashAt(i int) HashFunc[string] {
	return func(s string) int {
		return doubleHash(xxhash.Sum64String(s), murmur3.Sum64([]byte(s)), i)
	}
}
