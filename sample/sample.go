package sample

import (
	"fmt"
	"math/rand"
	"time"
)

// Source is the single stream of randomness for a generation run. Every
// component that samples shares one Source so that a fixed seed reproduces
// an identical population draw for draw.
type Source struct {
	rng *rand.Rand
}

func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomSource returns a time-seeded Source for non-reproducible runs.
func NewRandomSource() *Source {
	return NewSource(time.Now().UnixNano())
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// IntBetween returns a uniform integer in [lo, hi] inclusive.
func (s *Source) IntBetween(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Weighted draws one label with probability proportional to its weight.
// Weights need not sum to one. The inputs are never mutated so the same
// distribution can be drawn from repeatedly.
func (s *Source) Weighted(labels []string, weights []float64) (string, error) {
	if len(labels) != len(weights) {
		return "", fmt.Errorf("weighted draw: %d labels but %d weights", len(labels), len(weights))
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return "", fmt.Errorf("weighted draw: total weight must be positive")
	}

	v := s.rng.Float64() * total
	for i, w := range weights {
		v -= w
		if v < 0 {
			return labels[i], nil
		}
	}

	// float addition error can leave v a hair above zero after the scan, in
	// which case the draw belongs to the last label carrying any weight
	for i := len(labels) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return labels[i], nil
		}
	}
	return labels[len(labels)-1], nil
}
