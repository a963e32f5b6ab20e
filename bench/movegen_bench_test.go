package bench

import (
	"testing"

	"reversi-engine/engine"
	rm "reversi-engine/reversimg"
)

// midgame returns a fixed position about halfway through a random game.
func midgame(b *testing.B) (rm.BitBoard, rm.Side) {
	board, side, _ := engine.RandomPosition(engine.NewSeededRand(1), 30)
	if !board.HasMoves(side) {
		side = side.Flip()
	}
	if !board.HasMoves(side) {
		b.Fatalf("benchmark position has no moves:\n%s", board)
	}
	return board, side
}

var candidateSink rm.CandidateSet

func benchCandidates(b *testing.B, board rm.BitBoard, side rm.Side) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		candidateSink ^= board.Candidates(side)
	}
}

func BenchmarkCandidates_Initial(b *testing.B) {
	benchCandidates(b, rm.New(), rm.Black)
}

func BenchmarkCandidates_Midgame(b *testing.B) {
	board, side := midgame(b)
	benchCandidates(b, board, side)
}

func BenchmarkCandidates_Naive(b *testing.B) {
	board, side := midgame(b)
	naive := rm.NaiveFrom(&board)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = naive.Candidates(side)
	}
}

func BenchmarkPut_AllMoves_Midgame(b *testing.B) {
	board, side := midgame(b)
	moves := board.Candidates(side).Positions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range moves {
			child := board
			child.Put(side, p)
		}
	}
}

func BenchmarkUnique_Midgame(b *testing.B) {
	board, _ := midgame(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Unique()
	}
}
