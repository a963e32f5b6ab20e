package reversimg_test

import (
	"math/rand"
	"testing"

	rm "reversi-engine/reversimg"
)

func TestSymmetryOfInitialPosition(t *testing.T) {
	b := rm.New()
	if got := b.Symmetry(rm.Transpose); got != b {
		t.Fatalf("initial position not transpose-invariant:\n%s", got)
	}
	h := b.Symmetry(rm.MirrorHorizontal)
	if h.CellAt(rm.PositionAt(3, 3)) != rm.BlackCell || h.CellAt(rm.PositionAt(4, 4)) != rm.BlackCell {
		t.Fatalf("horizontal mirror misplaced black:\n%s", h)
	}
	if h.CellAt(rm.PositionAt(4, 3)) != rm.WhiteCell || h.CellAt(rm.PositionAt(3, 4)) != rm.WhiteCell {
		t.Fatalf("horizontal mirror misplaced white:\n%s", h)
	}
}

func TestSymmetryQuarterTurn(t *testing.T) {
	b, _ := rm.FromPlanes(rm.PositionAt(1, 0).Bit(), 0)
	img := b.Symmetry(rm.MirrorHorizontal | rm.Transpose)
	if img.Black() != rm.PositionAt(0, 6).Bit() {
		t.Fatalf("flag 5 moved (1,0) to %v", rm.PositionFromBit(img.Black()))
	}
	if img.InverseSymmetry(rm.MirrorHorizontal|rm.Transpose) != b {
		t.Fatalf("inverse of flag 5 did not restore the board")
	}
}

func randomBoard(rng *rand.Rand) rm.BitBoard {
	var black, white uint64
	for p := rm.Position(0); p < rm.Size*rm.Size; p++ {
		switch rng.Intn(3) {
		case 1:
			black |= p.Bit()
		case 2:
			white |= p.Bit()
		}
	}
	b, _ := rm.FromPlanes(black, white)
	return b
}

func TestSymmetryGroup(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		b := randomBoard(rng)
		bc, wc := b.Count()
		for f := uint8(0); f < 8; f++ {
			img := b.Symmetry(f)
			if ib, iw := img.Count(); ib != bc || iw != wc {
				t.Fatalf("flag %d changed counts", f)
			}
			if img.InverseSymmetry(f) != b {
				t.Fatalf("flag %d: inverse did not restore board", f)
			}
			if f == 5 || f == 6 {
				continue
			}
			if img.Symmetry(f) != b {
				t.Fatalf("flag %d is not an involution", f)
			}
		}
	}
}

func TestSymmetryCommutesWithCandidates(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for game := 0; game < 30; game++ {
		randomGame(rng, func(b rm.BitBoard, side rm.Side) {
			moves, _ := rm.FromPlanes(uint64(b.Candidates(side)), 0)
			for f := uint8(0); f < 8; f++ {
				want := moves.Symmetry(f).Black()
				if got := uint64(b.Symmetry(f).Candidates(side)); got != want {
					t.Fatalf("flag %d: candidates %016x want %016x\n%s", f, got, want, b)
				}
			}
		})
	}
}

func TestUniqueIsCanonical(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		b := randomBoard(rng)
		u := b.Unique()
		for f, img := range b.Images() {
			if img.Unique() != u {
				t.Fatalf("image %d has a different canonical form", f)
			}
			if img.Less(u) {
				t.Fatalf("image %d sorts before the canonical form", f)
			}
		}
		if u.Unique() != u {
			t.Fatalf("Unique is not idempotent")
		}
	}
}
