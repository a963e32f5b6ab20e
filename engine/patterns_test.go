package engine

import "testing"

func TestCountPatterns(t *testing.T) {
	layers := CountPatterns(3)
	if len(layers) != 3 {
		t.Fatalf("layers: got %d want 3", len(layers))
	}
	want := []PatternLayer{
		{Ply: 1, DirectParents: 1, Direct: 4, UniqueParents: 1, Unique: 1},
		{Ply: 2, DirectParents: 4, Direct: 12, UniqueParents: 1, Unique: 3},
	}
	for i, w := range want {
		if layers[i] != w {
			t.Fatalf("ply %d: got %+v want %+v", i+1, layers[i], w)
		}
	}
	// Ply 3 has 56 move sequences; transpositions can only merge them.
	if layers[2].Direct > 56 || layers[2].Unique > layers[2].Direct {
		t.Fatalf("ply 3: %+v", layers[2])
	}
	rows := PatternRows(layers[:2])
	if rows[0] != "1 4 1" || rows[1] != "2 12 3" {
		t.Fatalf("rows: %q", rows)
	}
}
