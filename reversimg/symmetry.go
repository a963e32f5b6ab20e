package reversimg

import "math/bits"

// Symmetry flags. They combine freely; the eight values 0-7 enumerate the
// dihedral group of the square.
const (
	MirrorHorizontal uint8 = 1 << iota
	MirrorVertical
	Transpose
)

// mirrorHorizontal reverses the bit order inside each byte (column a <-> h).
func mirrorHorizontal(x uint64) uint64 {
	x = ((x >> 1) & 0x5555555555555555) | ((x & 0x5555555555555555) << 1)
	x = ((x >> 2) & 0x3333333333333333) | ((x & 0x3333333333333333) << 2)
	x = ((x >> 4) & 0x0f0f0f0f0f0f0f0f) | ((x & 0x0f0f0f0f0f0f0f0f) << 4)
	return x
}

// mirrorVertical swaps rows (row 1 <-> row 8).
func mirrorVertical(x uint64) uint64 {
	return bits.ReverseBytes64(x)
}

// transpose reflects the board about the a1-h8 diagonal.
func transpose(x uint64) uint64 {
	const (
		k1 uint64 = 0x5500550055005500
		k2 uint64 = 0x3333000033330000
		k4 uint64 = 0x0f0f0f0f00000000
	)
	t := k4 & (x ^ (x << 28))
	x ^= t ^ (t >> 28)
	t = k2 & (x ^ (x << 14))
	x ^= t ^ (t >> 14)
	t = k1 & (x ^ (x << 7))
	x ^= t ^ (t >> 7)
	return x
}

func applySymmetry(x uint64, flag uint8) uint64 {
	if flag&MirrorHorizontal != 0 {
		x = mirrorHorizontal(x)
	}
	if flag&MirrorVertical != 0 {
		x = mirrorVertical(x)
	}
	if flag&Transpose != 0 {
		x = transpose(x)
	}
	return x
}

func invertSymmetry(x uint64, flag uint8) uint64 {
	if flag&Transpose != 0 {
		x = transpose(x)
	}
	if flag&MirrorVertical != 0 {
		x = mirrorVertical(x)
	}
	if flag&MirrorHorizontal != 0 {
		x = mirrorHorizontal(x)
	}
	return x
}

// Symmetry returns the image of the board under flag: horizontal mirror,
// then vertical mirror, then transpose, each when its bit is set.
func (b BitBoard) Symmetry(flag uint8) BitBoard {
	return BitBoard{
		black: applySymmetry(b.black, flag),
		white: applySymmetry(b.white, flag),
	}
}

// InverseSymmetry undoes Symmetry(flag). Flags 5 and 6 are quarter turns, so
// for them Symmetry is not its own inverse.
func (b BitBoard) InverseSymmetry(flag uint8) BitBoard {
	return BitBoard{
		black: invertSymmetry(b.black, flag),
		white: invertSymmetry(b.white, flag),
	}
}

// Images returns the board under all eight symmetries, indexed by flag.
func (b BitBoard) Images() [8]BitBoard {
	var out [8]BitBoard
	for f := uint8(0); f < 8; f++ {
		out[f] = b.Symmetry(f)
	}
	return out
}

// Unique returns the canonical form of the board: the image with the
// smallest (black, white) pair. Equivalent positions share one canonical
// form, so it is used to deduplicate position sets.
func (b BitBoard) Unique() BitBoard {
	best := b
	for f := uint8(1); f < 8; f++ {
		if img := b.Symmetry(f); img.Less(best) {
			best = img
		}
	}
	return best
}
