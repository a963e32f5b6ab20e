package reversimg

// NaiveBoard is a straightforward cell-array board. It scans every direction
// cell by cell and is only used to cross-check BitBoard in tests.
type NaiveBoard struct {
	cells [Size][Size]Cell
}

var (
	_ Board = (*BitBoard)(nil)
	_ Board = (*NaiveBoard)(nil)
)

var naiveDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// NewNaive returns the starting position.
func NewNaive() *NaiveBoard {
	b := New()
	return NaiveFrom(&b)
}

// NaiveFrom copies any board into a NaiveBoard.
func NaiveFrom(b Board) *NaiveBoard {
	n := &NaiveBoard{}
	for p := Position(0); p < Size*Size; p++ {
		col, row := ColRow(p)
		n.cells[row][col] = b.CellAt(p)
	}
	return n
}

func inBounds(col, row int) bool {
	return col >= 0 && col < Size && row >= 0 && row < Size
}

// run returns how many opponent cells are enclosed from (col, row) in the
// direction (dc, dr), or 0 if the run is not closed by one of side's pieces.
func (n *NaiveBoard) run(side Side, col, row, dc, dr int) int {
	mine := CellOf(side)
	count := 0
	for c, r := col+dc, row+dr; inBounds(c, r); c, r = c+dc, r+dr {
		switch n.cells[r][c] {
		case Vacant:
			return 0
		case mine:
			return count
		default:
			count++
		}
	}
	return 0
}

// CellAt returns the content of the cell at p.
func (n *NaiveBoard) CellAt(p Position) Cell {
	col, row := ColRow(p)
	return n.cells[row][col]
}

// Put places a piece and turns over every enclosed run.
func (n *NaiveBoard) Put(side Side, p Position) {
	col, row := ColRow(p)
	mine := CellOf(side)
	for _, d := range naiveDirs {
		k := n.run(side, col, row, d[0], d[1])
		for i := 1; i <= k; i++ {
			n.cells[row+i*d[1]][col+i*d[0]] = mine
		}
	}
	n.cells[row][col] = mine
}

// Candidates scans every vacant cell for a closed run.
func (n *NaiveBoard) Candidates(side Side) CandidateSet {
	var set CandidateSet
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if n.cells[row][col] != Vacant {
				continue
			}
			for _, d := range naiveDirs {
				if n.run(side, col, row, d[0], d[1]) > 0 {
					set |= CandidateSet(PositionAt(col, row).Bit())
					break
				}
			}
		}
	}
	return set
}

// Count returns the number of black and white pieces.
func (n *NaiveBoard) Count() (black, white Count) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch n.cells[row][col] {
			case BlackCell:
				black++
			case WhiteCell:
				white++
			}
		}
	}
	return black, white
}

// BitBoard converts the naive board to planes.
func (n *NaiveBoard) BitBoard() BitBoard {
	var b BitBoard
	for p := Position(0); p < Size*Size; p++ {
		switch n.CellAt(p) {
		case BlackCell:
			b.black |= p.Bit()
		case WhiteCell:
			b.white |= p.Bit()
		}
	}
	return b
}
