package reversimg

// candidates returns every empty cell where a piece of mine would capture at
// least one run of opp pieces.
func candidates(mine, opp uint64) uint64 {
	blank := ^(mine | opp)
	var moves uint64
	for _, a := range axes {
		watch := opp & a.watch
		moves |= blank & shiftBy(propagate(mine, watch, a.shift), a.shift)
		moves |= blank & shiftBy(propagate(mine, watch, -a.shift), -a.shift)
	}
	return moves
}

// Candidates returns the legal moves of side. An empty set means side has to
// pass.
func (b BitBoard) Candidates(side Side) CandidateSet {
	mine, opp := b.Planes(side)
	return CandidateSet(candidates(mine, opp))
}

// Mobility returns the number of legal moves of side.
func (b BitBoard) Mobility(side Side) int {
	return b.Candidates(side).Len()
}
