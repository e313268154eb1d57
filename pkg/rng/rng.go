// Package rng provides the seeded random source shared by the generator stages.
//
// A [Source] yields uniform integers and unbiased permutations. The default
// implementation is a PCG generator from math/rand/v2; tests can substitute a
// scripted source to force specific branches.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness a generation run consumes.
// *rand.Rand satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be > 0.
	IntN(n int) int
	// Shuffle permutes n elements uniformly using swap.
	Shuffle(n int, swap func(i, j int))
}

// New returns a deterministic source for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Resolve returns seed, or a clock-derived seed when seed is zero.
func Resolve(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	s := uint64(time.Now().UnixNano())
	if s == 0 {
		s = 1
	}
	return s
}

// Between returns a uniform integer in [lo, hi]. If hi <= lo it returns lo
// without consuming randomness.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Pick returns a uniformly chosen element of items. It panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Script is a Source that replays fixed IntN results in order and leaves
// shuffles as the identity. It falls back to zero once exhausted.
type Script struct {
	Values []int
	pos    int
}

// IntN returns the next scripted value reduced modulo n.
func (s *Script) IntN(n int) int {
	if s.pos >= len(s.Values) {
		return 0
	}
	v := s.Values[s.pos]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Shuffle is a no-op.
func (s *Script) Shuffle(int, func(i, j int)) {}
