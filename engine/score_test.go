package engine

import (
	"testing"

	rm "reversi-engine/reversimg"
)

func TestCountTurnOrdering(t *testing.T) {
	cases := []struct {
		name        string
		worse, best CountTurn
	}{
		{"larger margin", CountTurn{39, 24, 10}, CountTurn{40, 24, 10}},
		{"fewer opponent pieces", CountTurn{40, 24, 10}, CountTurn{40, 23, 10}},
		{"wipeout beats margin", CountTurn{60, 4, 3}, CountTurn{10, 0, 3}},
		{"earlier wipeout", CountTurn{11, 0, 11}, CountTurn{10, 0, 10}},
		{"wipeout with more pieces", CountTurn{10, 0, 10}, CountTurn{11, 0, 10}},
		{"earlier finish on equal margin", CountTurn{30, 20, 12}, CountTurn{30, 20, 11}},
		{"wiped out by fewer", CountTurn{0, 20, 5}, CountTurn{0, 10, 9}},
		{"min below everything", MinScore, CountTurn{1, 63, 60}},
		{"max above wipeouts", CountTurn{64, 0, 1}, MaxScore},
	}
	for _, c := range cases {
		if !c.worse.Less(c.best) || !c.best.Greater(c.worse) {
			t.Fatalf("%s: expected %v < %v", c.name, c.worse, c.best)
		}
		if Compare(c.worse, c.best) != -1 || Compare(c.best, c.worse) != 1 {
			t.Fatalf("%s: compare not antisymmetric", c.name)
		}
	}
	if Compare(CountTurn{33, 31, 60}, CountTurn{33, 31, 60}) != 0 {
		t.Fatalf("equal scores compare unequal")
	}
}

func TestCountTurnFlipAndSide(t *testing.T) {
	c := WithSide(rm.White, 40, 20, 7)
	if c != (CountTurn{20, 40, 7}) {
		t.Fatalf("WithSide white: got %v", c)
	}
	if c.Flip() != WithSide(rm.Black, 40, 20, 7) {
		t.Fatalf("flip does not switch point of view: %v", c.Flip())
	}
	if MinScore.Flip() != MaxScore {
		t.Fatalf("MinScore.Flip() = %v", MinScore.Flip())
	}
	if c.String() != "20-40@7" {
		t.Fatalf("String: %q", c.String())
	}
}
