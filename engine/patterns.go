package engine

import (
	"fmt"

	rm "reversi-engine/reversimg"

	"github.com/samber/lo"
)

// PatternLayer reports the distinct positions after one ply of full-width
// expansion from the initial position.
type PatternLayer struct {
	Ply           int
	DirectParents int
	Direct        int
	UniqueParents int
	Unique        int
}

func (l PatternLayer) String() string {
	return fmt.Sprintf("%d\n  %d->%d\n  %d->%d", l.Ply, l.UniqueParents, l.Unique, l.DirectParents, l.Direct)
}

// CountPatterns expands every position ply by ply, Black first, and counts
// the distinct boards reached both as-is and modulo symmetry. Positions where
// the side to move has to pass have no children.
func CountPatterns(plies int) []PatternLayer {
	direct := map[rm.BitBoard]struct{}{rm.New(): {}}
	unique := map[rm.BitBoard]struct{}{rm.New(): {}}
	side := rm.Black
	layers := make([]PatternLayer, 0, plies)
	for ply := 1; ply <= plies; ply++ {
		nextDirect := expand(direct, side, func(b rm.BitBoard) rm.BitBoard { return b })
		nextUnique := expand(unique, side, rm.BitBoard.Unique)
		layers = append(layers, PatternLayer{
			Ply:           ply,
			DirectParents: len(direct),
			Direct:        len(nextDirect),
			UniqueParents: len(unique),
			Unique:        len(nextUnique),
		})
		direct, unique = nextDirect, nextUnique
		side = side.Flip()
	}
	return layers
}

func expand(layer map[rm.BitBoard]struct{}, side rm.Side, key func(rm.BitBoard) rm.BitBoard) map[rm.BitBoard]struct{} {
	next := make(map[rm.BitBoard]struct{}, len(layer)*4)
	for b := range layer {
		moves := b.Candidates(side)
		for moves != 0 {
			child := b
			child.Put(side, moves.Pop())
			next[key(child)] = struct{}{}
		}
	}
	return next
}

// PatternRows renders layers as "ply direct unique" lines.
func PatternRows(layers []PatternLayer) []string {
	return lo.Map(layers, func(l PatternLayer, _ int) string {
		return fmt.Sprintf("%d %d %d", l.Ply, l.Direct, l.Unique)
	})
}
