package engine

import (
	"encoding/binary"

	rm "reversi-engine/reversimg"

	"lukechampine.com/frand"
)

// Strategy picks a move for the side it plays. candidates is never empty;
// occupied is the number of pieces on b.
type Strategy interface {
	Choose(b *rm.BitBoard, occupied rm.Count, candidates rm.CandidateSet, lastPassed bool) rm.Position
}

// Rand is the slice of an RNG the strategies need.
type Rand interface {
	Intn(n int) int
}

// NewRand returns an RNG seeded from entropy.
func NewRand() Rand {
	return frand.New()
}

// NewSeededRand returns a deterministic RNG for reproducible runs.
func NewSeededRand(seed uint64) Rand {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return frand.NewCustom(key, 1024, 12)
}

// RandomStrategy plays a uniformly random legal move.
type RandomStrategy struct {
	rng Rand
}

// NewRandomStrategy returns a RandomStrategy drawing from rng, or from an
// entropy-seeded RNG when rng is nil.
func NewRandomStrategy(rng Rand) *RandomStrategy {
	if rng == nil {
		rng = NewRand()
	}
	return &RandomStrategy{rng: rng}
}

func (s *RandomStrategy) Choose(_ *rm.BitBoard, _ rm.Count, candidates rm.CandidateSet, _ bool) rm.Position {
	return candidates.Nth(s.rng.Intn(candidates.Len()))
}

// ExactStrategy plays randomly until Threshold pieces are on the board, then
// solves every remaining move exactly.
type ExactStrategy struct {
	Side      rm.Side
	Threshold rm.Count

	random RandomStrategy
	solver Solver
}

// NewExactStrategy returns an ExactStrategy for side. A nil rng is replaced by
// an entropy-seeded one.
func NewExactStrategy(side rm.Side, threshold rm.Count, rng Rand) *ExactStrategy {
	return &ExactStrategy{
		Side:      side,
		Threshold: threshold,
		random:    *NewRandomStrategy(rng),
	}
}

func (s *ExactStrategy) Choose(b *rm.BitBoard, occupied rm.Count, candidates rm.CandidateSet, lastPassed bool) rm.Position {
	if occupied < s.Threshold {
		return s.random.Choose(b, occupied, candidates, lastPassed)
	}
	p, _ := s.solver.SearchExactWithCandidates(*b, s.Side, candidates, lastPassed)
	return p
}

// Stats returns the counters of every exact search run so far.
func (s *ExactStrategy) Stats() SearchStats { return s.solver.Stats }
