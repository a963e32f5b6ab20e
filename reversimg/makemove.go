package reversimg

import (
	"errors"
	"fmt"
)

var ErrIllegalMove = errors.New("illegal move")

// flips returns the opponent pieces captured by placing a piece of mine on
// bit. A run only counts when the walk ends on one of mine.
func flips(mine, opp, bit uint64) uint64 {
	var rev uint64
	for _, d := range directions {
		var run uint64
		next := shiftBy(bit, d.shift) & d.mask
		for next != 0 && next&opp != 0 {
			run |= next
			next = shiftBy(next, d.shift) & d.mask
		}
		if next&mine != 0 {
			rev |= run
		}
	}
	return rev
}

// Flips returns the pieces Put(side, p) would turn over, without changing the
// board.
func (b BitBoard) Flips(side Side, p Position) uint64 {
	mine, opp := b.Planes(side)
	return flips(mine, opp, p.Bit())
}

// Put places a piece of side on p and turns over every captured run.
//
// p must come from b.Candidates(side). Put does not check this: an empty
// flip mask or an occupied cell leaves the board in an undefined state. Use
// Play where the move comes from outside the engine.
func (b *BitBoard) Put(side Side, p Position) {
	bit := p.Bit()
	if side == Black {
		rev := flips(b.black, b.white, bit)
		b.black ^= rev | bit
		b.white ^= rev
		return
	}
	rev := flips(b.white, b.black, bit)
	b.white ^= rev | bit
	b.black ^= rev
}

// Play validates the move against the legal candidates before applying it.
func (b *BitBoard) Play(side Side, p Position) error {
	if !b.Candidates(side).Contains(p) {
		return fmt.Errorf("%w: %s %s", ErrIllegalMove, side, p)
	}
	b.Put(side, p)
	return nil
}
