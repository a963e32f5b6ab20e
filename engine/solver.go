package engine

import rm "reversi-engine/reversimg"

// Solver runs exact alpha-beta searches to the end of the game. The zero value
// is ready to use; Stats accumulates over every search run on it.
type Solver struct {
	Stats SearchStats
}

// SearchExact returns the perfect-play outcome for side to move, seen from
// side. lastPassed reports whether the previous move was a pass.
func (s *Solver) SearchExact(b rm.BitBoard, side rm.Side, lastPassed bool) CountTurn {
	return s.exact(b, side, lastPassed, 0, MinScore, MaxScore)
}

// SearchExactWithCandidates searches each candidate as a root move and returns
// the best one with its score. The first candidate that strictly improves on
// the running best is kept; when none does, the first candidate is returned.
// An empty candidate set yields NoPosition and the score after the pass.
func (s *Solver) SearchExactWithCandidates(b rm.BitBoard, side rm.Side, candidates rm.CandidateSet, lastPassed bool) (rm.Position, CountTurn) {
	if candidates == 0 {
		return rm.NoPosition, s.SearchExact(b, side, lastPassed)
	}
	s.Stats.Nodes++
	alpha := MinScore
	best := rm.NoPosition
	for candidates != 0 {
		p := candidates.Pop()
		if best == rm.NoPosition {
			best = p
		}
		child := b
		child.Put(side, p)
		score := s.exact(child, side.Flip(), false, 1, MinScore, alpha.Flip()).Flip()
		if score.Greater(alpha) {
			alpha = score
			best = p
		}
	}
	return best, alpha
}

// Solve returns the final (black, white) counts under perfect play.
func (s *Solver) Solve(b rm.BitBoard, side rm.Side, lastPassed bool) (black, white rm.Count) {
	score := s.SearchExact(b, side, lastPassed)
	if side == rm.Black {
		return score.Mine, score.Opp
	}
	return score.Opp, score.Mine
}

func (s *Solver) exact(b rm.BitBoard, side rm.Side, passed bool, turn Turn, alpha, beta CountTurn) CountTurn {
	s.Stats.Nodes++
	moves := b.Candidates(side)
	if moves == 0 {
		if passed {
			s.Stats.Terminals++
			black, white := b.Count()
			return WithSide(side, black, white, turn)
		}
		s.Stats.Passes++
		return s.exact(b, side.Flip(), true, turn, beta.Flip(), alpha.Flip()).Flip()
	}
	for moves != 0 {
		child := b
		child.Put(side, moves.Pop())
		score := s.exact(child, side.Flip(), false, turn+1, beta.Flip(), alpha.Flip()).Flip()
		if score.Greater(alpha) {
			alpha = score
		}
		if !alpha.Less(beta) {
			s.Stats.Cutoffs++
			break
		}
	}
	return alpha
}

// SearchExact runs a one-off Solver.SearchExact.
func SearchExact(b rm.BitBoard, side rm.Side, lastPassed bool) CountTurn {
	var s Solver
	return s.SearchExact(b, side, lastPassed)
}

// SearchExactWithCandidates runs a one-off Solver.SearchExactWithCandidates.
func SearchExactWithCandidates(b rm.BitBoard, side rm.Side, candidates rm.CandidateSet, lastPassed bool) (rm.Position, CountTurn) {
	var s Solver
	return s.SearchExactWithCandidates(b, side, candidates, lastPassed)
}

// Solve runs a one-off Solver.Solve.
func Solve(b rm.BitBoard, side rm.Side, lastPassed bool) (black, white rm.Count) {
	var s Solver
	return s.Solve(b, side, lastPassed)
}
