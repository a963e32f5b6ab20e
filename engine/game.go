package engine

import (
	rm "reversi-engine/reversimg"

	"github.com/rs/zerolog/log"
)

// Action is the outcome of a single turn.
type Action uint8

const (
	ActionPut Action = iota
	ActionPass
	ActionGameSet
)

func (a Action) String() string {
	switch a {
	case ActionPut:
		return "put"
	case ActionPass:
		return "pass"
	default:
		return "game-set"
	}
}

// Move records one turn of a game. Pos is NoPosition for a pass.
type Move struct {
	Side rm.Side
	Pos  rm.Position
}

// Game alternates two strategies from the initial position until the board is
// full or both sides pass in a row.
type Game struct {
	board      rm.BitBoard
	side       rm.Side
	occupied   rm.Count
	lastPassed bool
	players    [2]Strategy
	history    []Move
}

// NewGame starts a game from the initial position with Black to move.
func NewGame(black, white Strategy) *Game {
	return NewGameFrom(rm.New(), rm.Black, black, white)
}

// NewGameFrom starts a game from an arbitrary position.
func NewGameFrom(b rm.BitBoard, side rm.Side, black, white Strategy) *Game {
	return &Game{
		board:    b,
		side:     side,
		occupied: b.Occupied(),
		players:  [2]Strategy{black, white},
	}
}

// Board returns the current position.
func (g *Game) Board() rm.BitBoard { return g.board }

// Side returns the side to move.
func (g *Game) Side() rm.Side { return g.side }

// LastPassed reports whether the previous turn was a pass.
func (g *Game) LastPassed() bool { return g.lastPassed }

// History returns the turns played so far.
func (g *Game) History() []Move { return g.history }

// PlayOneTurn lets the side to move act once. ActionGameSet is returned, and
// the game does not change, once the board is full or after two passes.
func (g *Game) PlayOneTurn() Action {
	if g.occupied == rm.Size*rm.Size {
		return ActionGameSet
	}
	candidates := g.board.Candidates(g.side)
	if candidates == 0 {
		if g.lastPassed {
			return ActionGameSet
		}
		log.Debug().Stringer("side", g.side).Msg("pass")
		g.history = append(g.history, Move{Side: g.side, Pos: rm.NoPosition})
		g.side = g.side.Flip()
		g.lastPassed = true
		return ActionPass
	}
	p := g.players[g.side].Choose(&g.board, g.occupied, candidates, g.lastPassed)
	g.board.Put(g.side, p)
	log.Debug().Stringer("side", g.side).Stringer("pos", p).Uint8("occupied", g.occupied+1).Msg("put")
	g.history = append(g.history, Move{Side: g.side, Pos: p})
	g.side = g.side.Flip()
	g.lastPassed = false
	g.occupied++
	return ActionPut
}

// PlayGame runs the game to the end and returns the final counts.
func (g *Game) PlayGame() (black, white rm.Count) {
	for g.PlayOneTurn() != ActionGameSet {
	}
	black, white = g.board.Count()
	log.Debug().Uint8("black", black).Uint8("white", white).Int("turns", len(g.history)).Msg("game-set")
	return black, white
}

// PlayUntil plays turns until at least occupied pieces are on the board or the
// game ends, and returns the last action.
func (g *Game) PlayUntil(occupied rm.Count) Action {
	last := ActionPut
	for g.occupied < occupied && last != ActionGameSet {
		last = g.PlayOneTurn()
	}
	return last
}

// RandomPosition plays random moves from the initial position until at most
// empties cells are vacant. It returns the position, the side to move and
// whether the last turn was a pass.
func RandomPosition(rng Rand, empties int) (rm.BitBoard, rm.Side, bool) {
	random := NewRandomStrategy(rng)
	g := NewGame(random, random)
	g.PlayUntil(rm.Count(rm.Size*rm.Size - empties))
	return g.board, g.side, g.lastPassed
}
