package mines

/*
 * The eight (dr, dc) offsets around a cell.
 */
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the neighbors of (row, col) that lie on the board,
// as (row, col) pairs. The center cell itself may be out of bounds; its
// neighbors are still computed relative to it and bounds-filtered.
func (p GameParams) Neighbors(row, col int) [][2]int {
	ns := make([][2]int, 0, 8)
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if p.InBounds(r, c) {
			ns = append(ns, [2]int{r, c})
		}
	}
	return ns
}
