// Package entropy provides the single seeded random source shared by the
// whole simulation. Every stochastic decision draws from one Source, so
// replaying the same seed against the same inputs reproduces an identical
// trajectory.
package entropy

import (
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is a deterministic random source. It is not safe for concurrent
// use; the simulation is single-threaded by design.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// NewSource creates a source from a fixed seed.
func NewSource(seed int64) *Source {
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed this source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Float returns a random float64 in [0, 1).
func (s *Source) Float() float64 {
	return s.rng.Float64()
}

// IntRange returns a random int in [min, max] inclusive.
// Returns min when max <= min.
func (s *Source) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// ID returns a 16-character hex identifier drawn from the source.
// Identifiers generated this way are reproducible under the same seed.
func (s *Source) ID() string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], s.rng.Uint64())
	return fmt.Sprintf("%x", buf)
}

// Pick returns a uniformly random element of items. Panics on an empty slice:
// callers are expected to check eligibility first.
func Pick[T any](s *Source, items []T) T {
	return items[s.rng.Intn(len(items))]
}

// Weighted returns a weighted random element of items. Selection walks the
// cumulative weight sum and takes the first item whose cumulative weight
// covers the draw, so equal-weight ties resolve to the earliest item.
// Items with non-positive weight are never selected. Falls back to the first
// item when all weights are non-positive.
func Weighted[T any](s *Source, items []T, weight func(T) float64) T {
	total := 0.0
	for _, it := range items {
		if w := weight(it); w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return items[0]
	}

	return weightedAt(s.Float()*total, items, weight)
}

// weightedAt resolves a draw in [0, total) against the cumulative weight
// walk. The first item whose cumulative weight exceeds the draw wins, so a
// draw landing exactly on a cumulative boundary belongs to the next item
// and equal-weight ties resolve to the earliest item in the slice.
func weightedAt[T any](draw float64, items []T, weight func(T) float64) T {
	cum := 0.0
	for _, it := range items {
		w := weight(it)
		if w <= 0 {
			continue
		}
		cum += w
		if draw < cum {
			return it
		}
	}
	// Floating-point edge: draw landed exactly on the total.
	return items[len(items)-1]
}
