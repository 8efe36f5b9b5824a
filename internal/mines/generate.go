package mines

import (
	"fmt"
	"math/rand/v2"
)

/* ----------------------------------------------------------------------
 * Grid generator: rejection-sampled mine placement with a safe first
 * cell. The whole grid is regenerated until the requested cell comes
 * out clear, so the first dig opens a zero-count region whenever the
 * board admits one.
 */

// generate produces a true grid for p with a mine-free cell at
// (safeRow, safeCol), zero-count if the configuration allows it at all.
// Randomness comes from the caller-supplied source, so a fixed seed
// yields a fixed grid.
func (p GameParams) generate(safeRow, safeCol int, rnd *rand.Rand) (Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !p.InBounds(safeRow, safeCol) {
		return nil, InvalidConfigurationError{fmt.Sprintf(
			"safe cell %d:%d is out of bounds", safeRow, safeCol,
		)}
	}

	cells := p.CellCount()
	safe := p.index(safeRow, safeCol)

	/*
	 * The sampler terminates for any legal mine count, but a
	 * zero-count safe cell can be unsatisfiable: dense boards (or a
	 * 3x3 board with any mine at all) may leave a positive count at
	 * the target in every layout. Each constraint gets a bounded
	 * amount of sampling work; once the zero-count budget is spent we
	 * settle for a merely mine-free safe cell, which is always
	 * reachable since mineCount < cells.
	 */
	budget := cells*p.MineCount + 10_000

	for _, wantClear := range []bool{true, false} {
		spent := 0
		for spent <= budget {
			grid := make(Grid, cells)

			remaining := p.MineCount
			for remaining > 0 && spent <= budget {
				spent++
				i := rnd.IntN(cells)
				if grid[i] != Mine {
					grid[i] = Mine
					remaining--
				}
			}
			if remaining > 0 {
				break
			}
			spent++

			/*
			 * Derive counts: every non-mine neighbor of a mine gets
			 * one increment. Counts start at zero, so a clear cell is
			 * just a cell no increment ever reached.
			 */
			for i, c := range grid {
				if c != Mine {
					continue
				}
				for _, n := range p.Neighbors(i/p.Columns, i%p.Columns) {
					if j := p.index(n[0], n[1]); grid[j] != Mine {
						grid[j]++
					}
				}
			}

			if grid[safe] == 0 || (!wantClear && grid[safe] != Mine) {
				return grid, nil
			}
		}
	}

	return nil, InvalidConfigurationError{fmt.Sprintf(
		"mine placement for %s did not converge", p.Seed(),
	)}
}
