package reversimg

import (
	"errors"
	"fmt"
	"strings"
)

// Glyphs of the text board format.
const (
	GlyphVacant    = '_'
	GlyphBlack     = '●'
	GlyphWhite     = '○'
	GlyphCandidate = '*'
)

var (
	ErrShortInput   = errors.New("board text too short")
	ErrUnknownGlyph = errors.New("unknown board glyph")
	ErrRowLength    = errors.New("board row has wrong length")
	ErrBadSide      = errors.New("invalid side")
)

// Glyph returns the text representation of a cell.
func (c Cell) Glyph() rune {
	switch c {
	case BlackCell:
		return GlyphBlack
	case WhiteCell:
		return GlyphWhite
	default:
		return GlyphVacant
	}
}

func (c Cell) String() string { return string(c.Glyph()) }

// cellFromGlyph decodes one glyph. The candidate marker decodes as vacant.
func cellFromGlyph(r rune) (Cell, bool) {
	switch r {
	case GlyphVacant, GlyphCandidate:
		return Vacant, true
	case GlyphBlack:
		return BlackCell, true
	case GlyphWhite:
		return WhiteCell, true
	default:
		return Vacant, false
	}
}

// ParseBoard decodes eight rows of eight glyphs. Every row must be followed by
// a newline, except that the last one may end the input. Anything after the
// eighth row is ignored.
func ParseBoard(s string) (BitBoard, error) {
	runes := []rune(s)
	var b BitBoard
	bit := uint64(0x8000000000000000)
	i := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if i >= len(runes) {
				return BitBoard{}, fmt.Errorf("%w: row %d col %d", ErrShortInput, row, col)
			}
			if runes[i] == '\n' {
				return BitBoard{}, fmt.Errorf("%w: row %d", ErrRowLength, row)
			}
			cell, ok := cellFromGlyph(runes[i])
			if !ok {
				return BitBoard{}, fmt.Errorf("%w %q at row %d col %d", ErrUnknownGlyph, runes[i], row, col)
			}
			switch cell {
			case BlackCell:
				b.black |= bit
			case WhiteCell:
				b.white |= bit
			}
			bit >>= 1
			i++
		}
		if i < len(runes) {
			if runes[i] != '\n' {
				return BitBoard{}, fmt.Errorf("%w: row %d", ErrRowLength, row)
			}
			i++
		} else if row < Size-1 {
			return BitBoard{}, fmt.Errorf("%w: row %d", ErrShortInput, row+1)
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixtures known to be valid.
func MustParseBoard(s string) BitBoard {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b BitBoard) format(marks uint64) string {
	var sb strings.Builder
	sb.Grow(Size * (Size*3 + 1))
	bit := uint64(0x8000000000000000)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch {
			case b.black&bit != 0:
				sb.WriteRune(GlyphBlack)
			case b.white&bit != 0:
				sb.WriteRune(GlyphWhite)
			case marks&bit != 0:
				sb.WriteRune(GlyphCandidate)
			default:
				sb.WriteRune(GlyphVacant)
			}
			bit >>= 1
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String encodes the board in the text format, one newline-terminated row
// per line.
func (b BitBoard) String() string { return b.format(0) }

// FormatCandidates encodes the board with the legal moves of side marked.
func (b BitBoard) FormatCandidates(side Side) string {
	return b.format(uint64(b.Candidates(side)))
}

// ParseSide accepts B/W (any case) or the full side name.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "b", "black", string(GlyphBlack):
		return Black, nil
	case "w", "white", string(GlyphWhite):
		return White, nil
	}
	return Black, fmt.Errorf("%w: %q", ErrBadSide, s)
}
