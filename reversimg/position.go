package reversimg

import (
	"errors"
	"fmt"
	"math/bits"
)

// Size is the board width and height.
const Size = 8

// Position is a cell index 0-63, row-major from the top-left cell.
type Position uint8

// NoPosition is returned where no cell applies.
const NoPosition Position = 0xff

var ErrBadPosition = errors.New("invalid position")

// PositionAt converts a (col, row) pair to a position.
func PositionAt(col, row int) Position {
	return Position(row*Size + col)
}

// ColRow converts a position to its (col, row) pair.
func ColRow(p Position) (col, row int) {
	return int(p) % Size, int(p) / Size
}

// Bit returns the single-bit mask for p.
func (p Position) Bit() uint64 { return 0x8000000000000000 >> p }

// PositionFromBit converts a single-bit mask back to a position.
func PositionFromBit(bit uint64) Position {
	return Position(bits.LeadingZeros64(bit))
}

// String renders the position as a column letter and row digit ("d3").
func (p Position) String() string {
	if p >= Size*Size {
		return "--"
	}
	col, row := ColRow(p)
	return string([]byte{'a' + byte(col), '1' + byte(row)})
}

// ParsePosition parses "d3" style notation.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return NoPosition, fmt.Errorf("%w: %q", ErrBadPosition, s)
	}
	col := int(s[0]) - 'a'
	if s[0] >= 'A' && s[0] <= 'H' {
		col = int(s[0]) - 'A'
	}
	row := int(s[1]) - '1'
	if col < 0 || col >= Size || row < 0 || row >= Size {
		return NoPosition, fmt.Errorf("%w: %q", ErrBadPosition, s)
	}
	return PositionAt(col, row), nil
}

// CandidateSet is a mask of legal moves, one bit per position.
type CandidateSet uint64

// Len returns the number of candidates.
func (c CandidateSet) Len() int { return bits.OnesCount64(uint64(c)) }

// Contains reports whether p is in the set.
func (c CandidateSet) Contains(p Position) bool {
	return p < Size*Size && uint64(c)&p.Bit() != 0
}

// Pop removes and returns the lowest position in the set. The set must not
// be empty.
func (c *CandidateSet) Pop() Position {
	p := Position(bits.LeadingZeros64(uint64(*c)))
	*c &^= CandidateSet(p.Bit())
	return p
}

// Nth returns the i-th position in ascending order, or NoPosition.
func (c CandidateSet) Nth(i int) Position {
	for c != 0 {
		p := c.Pop()
		if i == 0 {
			return p
		}
		i--
	}
	return NoPosition
}

// Positions lists the candidates in ascending order.
func (c CandidateSet) Positions() []Position {
	out := make([]Position, 0, c.Len())
	for c != 0 {
		out = append(out, c.Pop())
	}
	return out
}
