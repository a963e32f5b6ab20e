package reversimg

// Edge masks used while scanning opponent runs. A run can never continue
// through the outer columns (or rows, for vertical and diagonal scans), so
// masking them out stops shifts from wrapping across the board edge.
const (
	horizontalWatch uint64 = 0x7e7e7e7e7e7e7e7e
	verticalWatch   uint64 = 0x00ffffffffffff00
	diagonalWatch   uint64 = 0x007e7e7e7e7e7e00
)

// axis is one line family scanned in both signed directions.
type axis struct {
	shift int
	watch uint64
}

var axes = [4]axis{
	{1, horizontalWatch},
	{8, verticalWatch},
	{7, diagonalWatch},
	{9, diagonalWatch},
}

// direction is a single signed step together with the mask of cells that can
// be reached by that step without wrapping.
type direction struct {
	shift int
	mask  uint64
}

// Positive shifts move toward bit 63 (up / left), negative ones toward bit 0.
var directions = [8]direction{
	{1, 0xfefefefefefefefe},  // left
	{7, 0x7f7f7f7f7f7f7f00},  // up-right
	{8, 0xffffffffffffff00},  // up
	{9, 0xfefefefefefefe00},  // up-left
	{-1, 0x7f7f7f7f7f7f7f7f}, // right
	{-7, 0x00fefefefefefefe}, // down-left
	{-8, 0x00ffffffffffffff}, // down
	{-9, 0x007f7f7f7f7f7f7f}, // down-right
}

// shiftBy shifts left for positive s and right for negative s.
func shiftBy(x uint64, s int) uint64 {
	if s > 0 {
		return x << uint(s)
	}
	return x >> uint(-s)
}

// propagate returns the cells of watch reachable from mine through an
// unbroken run of watch cells along one signed direction. It is a
// Kogge-Stone occluded fill: three doubling steps cover runs of up to seven
// cells, which is more than a row can hold.
func propagate(mine, watch uint64, shift int) uint64 {
	gen := mine
	pro := watch
	gen |= pro & shiftBy(gen, shift)
	pro &= shiftBy(pro, shift)
	gen |= pro & shiftBy(gen, 2*shift)
	pro &= shiftBy(pro, 2*shift)
	gen |= pro & shiftBy(gen, 4*shift)
	return gen & watch
}
