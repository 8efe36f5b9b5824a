package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown CellState = -2
	Flagged CellState = -1
	/*
	 * 0 to 8 mean the cell is open with a surrounding mine count;
	 * 0 is a clear cell.
	 *
	 * Mine only ever appears in the true grid. Detonated marks the
	 * mine the player dug, and appears in the visible grid once the
	 * game is lost.
	 */
	Mine      CellState = 9
	Detonated CellState = 10

	/* internal marker for cells queued during a flood-fill */
	queued CellState = -10
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "#"
	case s == Flagged:
		return "F"
	case s == Mine:
		return "*"
	case s == Detonated:
		return "!"
	case s == 0:
		return " "
	case 1 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "?"
	}
}

// Grid is a row-major sequence of cell states.
type Grid []CellState

func (g Grid) ToString(columns int) string {
	var b strings.Builder
	for row := range len(g) / columns {
		for col := range columns {
			i := row*columns + col
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
