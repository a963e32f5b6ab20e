package engine

import (
	"fmt"

	rm "reversi-engine/reversimg"
)

// Turn counts the plies played since the root of a search. Passes do not
// advance it.
type Turn = uint8

// CountTurn is the solver's score: final piece counts from the point of view
// of one side, plus the ply at which the game ended.
type CountTurn struct {
	Mine rm.Count
	Opp  rm.Count
	Turn Turn
}

var (
	// MinScore is the worst outcome: every piece lost at once.
	MinScore = CountTurn{Mine: 0, Opp: 64, Turn: 0}
	// MaxScore is the best outcome: every piece won at once.
	MaxScore = CountTurn{Mine: 64, Opp: 0, Turn: 0}
)

// WithSide builds the score of a finished board from side's point of view.
func WithSide(side rm.Side, black, white rm.Count, turn Turn) CountTurn {
	if side == rm.Black {
		return CountTurn{Mine: black, Opp: white, Turn: turn}
	}
	return CountTurn{Mine: white, Opp: black, Turn: turn}
}

// Flip swaps the point of view.
func (c CountTurn) Flip() CountTurn {
	return CountTurn{Mine: c.Opp, Opp: c.Mine, Turn: c.Turn}
}

// Compare returns -1, 0 or 1 as a is worse than, equal to, or better than b.
//
// A wipeout of the opponent beats everything else and the sooner one wins.
// Two wipeouts of oneself compare by the opponent count alone. All other
// results compare by piece difference, then by the earlier finish.
func Compare(a, b CountTurn) int {
	switch {
	case a.Opp == 0 && b.Opp == 0:
		if a.Turn != b.Turn {
			return cmpInt(int(b.Turn), int(a.Turn))
		}
		return cmpInt(int(a.Mine), int(b.Mine))
	case a.Mine == 0 && b.Mine == 0:
		return cmpInt(int(b.Opp), int(a.Opp))
	case a.Opp == 0:
		return 1
	case b.Opp == 0:
		return -1
	}
	da := int(int8(a.Mine) - int8(a.Opp))
	db := int(int8(b.Mine) - int8(b.Opp))
	if da != db {
		return cmpInt(da, db)
	}
	return cmpInt(int(b.Turn), int(a.Turn))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Less reports whether c is a worse outcome than o.
func (c CountTurn) Less(o CountTurn) bool { return Compare(c, o) < 0 }

// Greater reports whether c is a better outcome than o.
func (c CountTurn) Greater(o CountTurn) bool { return Compare(c, o) > 0 }

func (c CountTurn) String() string {
	return fmt.Sprintf("%d-%d@%d", c.Mine, c.Opp, c.Turn)
}
