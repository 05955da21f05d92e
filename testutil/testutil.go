package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/buffer"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// RandomVector returns a vector of nbits bits where each bit is set with
// probability density.
func (r *RNG) RandomVector(nbits int, endianness bitvec.Endianness, density float64) *buffer.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, _ := buffer.New(nbits, endianness)
	for i := 0; i < nbits; i++ {
		if r.rand.Float64() < density {
			_ = v.Set(i, true)
		}
	}
	return v
}

// PrefixCount returns the number of set bits in v[0:i] by linear scan.
func PrefixCount(v *buffer.Vector, i int) int {
	count := 0
	for j := 0; j < i; j++ {
		if b, _ := v.Get(j); b {
			count++
		}
	}
	return count
}

// NaiveRank returns the smallest prefix length of v holding exactly n set
// bits, scanning one bit at a time. ok is false when no such prefix exists.
func NaiveRank(v *buffer.Vector, n int) (int, bool) {
	if n == 0 {
		return 0, true
	}
	count := 0
	for i := 0; i < v.Len(); i++ {
		if b, _ := v.Get(i); b {
			count++
		}
		if count == n {
			return i + 1, true
		}
	}
	return 0, false
}

// NaiveFindLast returns the highest index of v holding value, scanning one
// bit at a time. ok is false when value is absent.
func NaiveFindLast(v *buffer.Vector, value bool) (int, bool) {
	for i := v.Len() - 1; i >= 0; i-- {
		if b, _ := v.Get(i); b == value {
			return i, true
		}
	}
	return 0, false
}

// NaiveCount returns the population count of the bitwise combination of a
// and b by materializing every combined bit, the approach the pairwise
// reducer exists to avoid.
func NaiveCount(op bitvec.Op, a, b *buffer.Vector) int {
	count := 0
	for i := 0; i < a.Len(); i++ {
		x, _ := a.Get(i)
		y, _ := b.Get(i)

		var combined bool
		switch op {
		case bitvec.OpAnd:
			combined = x && y
		case bitvec.OpOr:
			combined = x || y
		case bitvec.OpXor:
			combined = x != y
		}
		if combined {
			count++
		}
	}
	return count
}
