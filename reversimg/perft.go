package reversimg

// Perft counts the leaf nodes of the game tree below b, depth plies deep, with
// side to move. A forced pass counts as a ply; a position where neither side
// can move is a leaf regardless of the remaining depth.
func Perft(b BitBoard, side Side, depth int) uint64 {
	return perftRec(b, side, depth, false)
}

func perftRec(b BitBoard, side Side, depth int, passed bool) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.Candidates(side)
	if moves == 0 {
		if passed {
			return 1
		}
		return perftRec(b, side.Flip(), depth-1, true)
	}
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for moves != 0 {
		child := b
		child.Put(side, moves.Pop())
		nodes += perftRec(child, side.Flip(), depth-1, false)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(b BitBoard, side Side, depth int) map[Position]uint64 {
	result := make(map[Position]uint64)
	if depth <= 0 {
		return result
	}
	moves := b.Candidates(side)
	for moves != 0 {
		p := moves.Pop()
		child := b
		child.Put(side, p)
		result[p] = Perft(child, side.Flip(), depth-1)
	}
	return result
}
