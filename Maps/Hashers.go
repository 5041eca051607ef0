package Maps

import (
	"github.com/cespare/xxhash/v2"
)

// Hasher maps key to a slot index in [0, size). size>0.
type Hasher func(key string, size uint) uint

const (
	polyA uint = 31415
	polyB uint = 27183
)

// Polynomial rolling hash over the runes of key. Both the accumulator and the
// multiplier are reduced at every step, the multiplier modulo size-1, so the
// result depends on size and on the order of the runes.
// Time: O(len(key))
func Polynomial(key string, size uint) uint {
	if size < 2 {
		return 0
	}
	var h uint
	a := polyA
	for _, c := range key {
		h = (uint(c) + a*h) % size
		a = a * polyB % (size - 1)
	}
	return h
}

// XXHash reduces the 64 bit xxhash of key modulo size.
func XXHash(key string, size uint) uint {
	return uint(xxhash.Sum64String(key) % uint64(size))
}

// HasherByName returns the hasher called name: "polynomial" or "xxhash".
func HasherByName(name string) (Hasher, bool) {
	switch name {
	case "polynomial", "":
		return Polynomial, true
	case "xxhash":
		return XXHash, true
	}
	return nil, false
}
