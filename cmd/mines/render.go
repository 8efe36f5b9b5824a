package main

import (
	"fmt"
	"io"

	"minefield/internal/mines"
)

/*
 * renderGrid writes a grid with row and column rulers:
 *
 *      | 0         1
 *      | 0123456789012345
 *    --|-----------------
 *     0| ################
 *     1| ################
 *
 * The column ruler is split into a tens row and a ones row so wide
 * boards stay addressable.
 */
func renderGrid(w io.Writer, g mines.Grid, columns int) {
	fmt.Fprint(w, "  | ")
	for col := range columns {
		if col%10 == 0 {
			fmt.Fprintf(w, "%d", col/10)
		} else {
			fmt.Fprint(w, " ")
		}
	}

	fmt.Fprint(w, "\n  | ")
	for col := range columns {
		fmt.Fprintf(w, "%d", col%10)
	}

	fmt.Fprint(w, "\n--|-")
	for range columns {
		fmt.Fprint(w, "-")
	}
	fmt.Fprint(w, "\n")

	for row := range len(g) / columns {
		fmt.Fprintf(w, "%2d| ", row)
		for col := range columns {
			fmt.Fprint(w, g[row*columns+col].String())
		}
		fmt.Fprint(w, "\n")
	}
}
