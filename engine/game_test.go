package engine

import (
	"testing"

	rm "reversi-engine/reversimg"
)

func TestRandomGamesFinish(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		g := NewGame(NewRandomStrategy(NewSeededRand(seed)), NewRandomStrategy(NewSeededRand(seed+1000)))
		black, white := g.PlayGame()
		if int(black)+int(white) > rm.Size*rm.Size {
			t.Fatalf("seed %d: counts (%d,%d) exceed the board", seed, black, white)
		}
		if bb, bw := g.Board().Count(); bb != black || bw != white {
			t.Fatalf("seed %d: result (%d,%d) differs from board (%d,%d)", seed, black, white, bb, bw)
		}
		if !g.Board().IsGameOver() {
			t.Fatalf("seed %d: game stopped early\n%s", seed, g.Board())
		}
		puts := 0
		for _, m := range g.History() {
			if m.Pos != rm.NoPosition {
				puts++
			}
		}
		if puts != int(g.Board().Occupied())-4 {
			t.Fatalf("seed %d: %d puts for %d pieces", seed, puts, g.Board().Occupied())
		}
		before := g.Board()
		if a := g.PlayOneTurn(); a != ActionGameSet || g.Board() != before {
			t.Fatalf("seed %d: finished game accepted another turn (%v)", seed, a)
		}
	}
}

func TestSeededGamesRepeat(t *testing.T) {
	play := func() []Move {
		g := NewGame(NewRandomStrategy(NewSeededRand(7)), NewRandomStrategy(NewSeededRand(8)))
		g.PlayGame()
		return g.History()
	}
	a, b := play(), play()
	if len(a) != len(b) {
		t.Fatalf("histories differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("turn %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGamePassThenPut(t *testing.T) {
	b := endgame([]rm.Position{rm.PositionAt(0, 0)}, []rm.Position{rm.PositionAt(1, 0)})
	g := NewGameFrom(b, rm.White, NewRandomStrategy(NewSeededRand(1)), NewRandomStrategy(NewSeededRand(2)))
	if a := g.PlayOneTurn(); a != ActionPass || !g.LastPassed() || g.Side() != rm.Black {
		t.Fatalf("expected white to pass, got %v", a)
	}
	if a := g.PlayOneTurn(); a != ActionPut || g.LastPassed() {
		t.Fatalf("expected black to put, got %v", a)
	}
	if a := g.PlayOneTurn(); a != ActionGameSet {
		t.Fatalf("full board should end the game, got %v", a)
	}
	if black, white := g.PlayGame(); black != 64 || white != 0 {
		t.Fatalf("final counts (%d,%d)", black, white)
	}
}

func TestExactPlayersFinish(t *testing.T) {
	for seed := uint64(1); seed <= 3; seed++ {
		black := NewExactStrategy(rm.Black, 54, NewSeededRand(seed))
		white := NewExactStrategy(rm.White, 54, NewSeededRand(seed+100))
		g := NewGame(black, white)
		b, w := g.PlayGame()
		if int(b)+int(w) > rm.Size*rm.Size {
			t.Fatalf("seed %d: counts (%d,%d)", seed, b, w)
		}
		if bb, bw := g.Board().Count(); bb != b || bw != w {
			t.Fatalf("seed %d: result differs from board", seed)
		}
	}
}

func TestExactStrategyChoosesSolvedMove(t *testing.T) {
	b := endgame(
		[]rm.Position{rm.PositionAt(0, 7), rm.PositionAt(7, 7)},
		[]rm.Position{rm.PositionAt(1, 7), rm.PositionAt(5, 7), rm.PositionAt(6, 7)},
	)
	s := NewExactStrategy(rm.Black, 0, NewSeededRand(1))
	if p := s.Choose(&b, b.Occupied(), b.Candidates(rm.Black), false); p != rm.PositionAt(0, 7) {
		t.Fatalf("exact choice: got %v want a8", p)
	}
	if s.Stats().Nodes == 0 {
		t.Fatalf("exact search recorded no nodes")
	}
}

func TestRandomStrategyPicksCandidate(t *testing.T) {
	s := NewRandomStrategy(NewSeededRand(3))
	b := rm.New()
	candidates := b.Candidates(rm.Black)
	seen := make(map[rm.Position]bool)
	for i := 0; i < 200; i++ {
		p := s.Choose(&b, b.Occupied(), candidates, false)
		if !candidates.Contains(p) {
			t.Fatalf("chose non-candidate %v", p)
		}
		seen[p] = true
	}
	if len(seen) != candidates.Len() {
		t.Fatalf("random strategy visited %d of %d moves", len(seen), candidates.Len())
	}
}

func TestRandomPosition(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		b, side, passed := RandomPosition(NewSeededRand(seed), 10)
		if !b.Validate() {
			t.Fatalf("seed %d: invalid board", seed)
		}
		if b.Occupied() < 54 && !b.IsGameOver() {
			t.Fatalf("seed %d: stopped at %d pieces", seed, b.Occupied())
		}
		if passed && b.IsGameOver() {
			continue
		}
		if passed && !b.HasMoves(side) {
			t.Fatalf("seed %d: pass recorded but %v cannot move either", seed, side)
		}
	}
}
