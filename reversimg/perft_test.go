package reversimg_test

import (
	"testing"

	rm "reversi-engine/reversimg"
)

func TestPerftInitialPosition(t *testing.T) {
	want := []uint64{1, 4, 12, 56, 244, 1396, 8200}
	b := rm.New()
	for depth, n := range want {
		if got := rm.Perft(b, rm.Black, depth); got != n {
			t.Fatalf("perft depth%d: got %d want %d", depth, got, n)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	b := rm.New()
	div := rm.PerftDivide(b, rm.Black, 4)
	if len(div) != 4 {
		t.Fatalf("divide roots: got %d want 4", len(div))
	}
	var sum uint64
	for p, n := range div {
		if n != 61 {
			t.Fatalf("root %v: got %d want 61", p, n)
		}
		sum += n
	}
	if sum != rm.Perft(b, rm.Black, 4) {
		t.Fatalf("divide sum %d differs from perft", sum)
	}
}

func TestPerftCountsPasses(t *testing.T) {
	// Black cannot move, White can: the pass is a ply of its own.
	b := rm.MustParseBoard(
		"○●_●●●●●\n" +
			"●●●●●●●●\n" +
			"●●●●●●●●\n" +
			"●●●●●●●●\n" +
			"●●●●●●●●\n" +
			"●●●●●●●●\n" +
			"●●●●●●●●\n" +
			"●●●●●●●●\n")
	if b.HasMoves(rm.Black) {
		t.Fatalf("black should have to pass")
	}
	if got := rm.Perft(b, rm.Black, 1); got != 1 {
		t.Fatalf("perft depth1 with pass: got %d want 1", got)
	}
	if got := rm.Perft(b, rm.Black, 2); got != 1 {
		t.Fatalf("perft depth2 with pass: got %d want 1", got)
	}
	// After the finished game no further plies exist.
	full, _ := rm.FromPlanes(^uint64(0), 0)
	if got := rm.Perft(full, rm.White, 5); got != 1 {
		t.Fatalf("finished game: got %d want 1", got)
	}
}
