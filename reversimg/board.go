package reversimg

import "math/bits"

// Side identifies a player. Black moves first.
type Side uint8

const (
	Black Side = 0
	White Side = 1
)

// Flip returns the other side.
func (s Side) Flip() Side { return s ^ 1 }

func (s Side) String() string {
	if s == Black {
		return "B"
	}
	return "W"
}

// Count is a number of pieces on the board (0-64).
type Count = uint8

// Cell is the content of a single square.
type Cell uint8

const (
	Vacant Cell = iota
	BlackCell
	WhiteCell
)

// CellOf returns the occupied cell for a side.
func CellOf(s Side) Cell {
	if s == Black {
		return BlackCell
	}
	return WhiteCell
}

// Board is the capability shared by every board representation. BitBoard is
// the production implementation; NaiveBoard exists for differential testing.
type Board interface {
	Put(side Side, p Position)
	Candidates(side Side) CandidateSet
	Count() (black, white Count)
	CellAt(p Position) Cell
}

const (
	initialBlack uint64 = 0x0000000810000000
	initialWhite uint64 = 0x0000001008000000
)

// BitBoard holds one occupancy plane per side. Bit 63 is the top-left cell
// (a1) and bit 0 the bottom-right cell (h8). The struct is a value: assigning
// it copies the whole position.
type BitBoard struct {
	black uint64
	white uint64
}

// New returns the standard starting position.
func New() BitBoard {
	return BitBoard{black: initialBlack, white: initialWhite}
}

// FromPlanes builds a board from raw planes. It reports false if the planes
// overlap.
func FromPlanes(black, white uint64) (BitBoard, bool) {
	if black&white != 0 {
		return BitBoard{}, false
	}
	return BitBoard{black: black, white: white}, true
}

// Black returns the black occupancy plane.
func (b BitBoard) Black() uint64 { return b.black }

// White returns the white occupancy plane.
func (b BitBoard) White() uint64 { return b.white }

// Planes returns (mine, opp) from the point of view of side.
func (b BitBoard) Planes(side Side) (mine, opp uint64) {
	if side == Black {
		return b.black, b.white
	}
	return b.white, b.black
}

// Empty returns the mask of vacant cells.
func (b BitBoard) Empty() uint64 { return ^(b.black | b.white) }

// Count returns the number of black and white pieces.
func (b BitBoard) Count() (black, white Count) {
	return Count(bits.OnesCount64(b.black)), Count(bits.OnesCount64(b.white))
}

// Occupied returns the number of pieces on the board.
func (b BitBoard) Occupied() Count {
	return Count(bits.OnesCount64(b.black | b.white))
}

// CellAt returns the content of the cell at p.
func (b BitBoard) CellAt(p Position) Cell {
	bit := p.Bit()
	switch {
	case b.black&bit != 0:
		return BlackCell
	case b.white&bit != 0:
		return WhiteCell
	default:
		return Vacant
	}
}

// Validate reports whether no cell is claimed by both sides.
func (b BitBoard) Validate() bool { return b.black&b.white == 0 }

// HasMoves reports whether side has at least one legal move.
func (b BitBoard) HasMoves(side Side) bool { return b.Candidates(side) != 0 }

// IsGameOver reports whether neither side can move.
func (b BitBoard) IsGameOver() bool {
	return !b.HasMoves(Black) && !b.HasMoves(White)
}

// Less orders boards by their (black, white) pair.
func (b BitBoard) Less(o BitBoard) bool {
	if b.black != o.black {
		return b.black < o.black
	}
	return b.white < o.white
}
