package dodge

import (
	"math/rand"
)

// RandomSource supplies uniformly distributed integers.
// IntRange returns a value in [lo, hi); callers guarantee lo < hi.
type RandomSource interface {
	IntRange(lo, hi int) int
}

// SeededSource is a RandomSource backed by math/rand.
// The same seed yields the same sequence of draws.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a source seeded with the given value.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform value in [lo, hi).
func (s *SeededSource) IntRange(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo)
}

// SequenceSource replays a fixed list of draws; once exhausted the last draw
// repeats forever. Each value is folded into the requested range, so a script
// written for one viewport stays within bounds on another. Used for scripted runs.
type SequenceSource struct {
	draws []int
	pos   int
}

// NewSequenceSource creates a source that returns draws in order.
// An empty list behaves like a list holding a single zero.
func NewSequenceSource(draws ...int) *SequenceSource {
	if len(draws) == 0 {
		draws = []int{0}
	}
	return &SequenceSource{draws: draws}
}

// IntRange returns the next scripted draw folded into [lo, hi).
func (s *SequenceSource) IntRange(lo, hi int) int {
	v := s.draws[min(s.pos, len(s.draws)-1)]
	s.pos++

	span := hi - lo
	off := (v - lo) % span
	if off < 0 {
		off += span
	}
	return lo + off
}

// Drawn returns how many values have been drawn so far.
func (s *SequenceSource) Drawn() int {
	return s.pos
}
