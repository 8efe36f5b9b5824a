package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateMineCountAndSafeCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{
			name:   "9x9(10)",
			params: GameParams{Rows: 9, Columns: 9, MineCount: 10},
		},
		{
			name:   "9x9(35)",
			params: GameParams{Rows: 9, Columns: 9, MineCount: 35},
		},
		{
			name:   "16x16(40)",
			params: GameParams{Rows: 16, Columns: 16, MineCount: 40},
		},
		{
			name:   "16x30(99)",
			params: GameParams{Rows: 16, Columns: 30, MineCount: 99},
		},
		{
			name:   "10x10(0)",
			params: GameParams{Rows: 10, Columns: 10, MineCount: 0},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			params := test.params
			r := rand.New(rand.NewPCG(1, 2))
			for safeRow := range params.Rows {
				for safeCol := range params.Columns {
					grid, err := params.generate(safeRow, safeCol, r)
					if err != nil {
						t.Fatalf("could not generate %s @ %d:%d: %v",
							test.name, safeRow, safeCol, err)
					}

					mineCells := 0
					for _, c := range grid {
						if c == Mine {
							mineCells++
						}
					}
					assert.Equal(t, params.MineCount, mineCells)
					assert.NotEqual(t, Mine, grid[params.index(safeRow, safeCol)])
				}
			}
		})
	}
}

func TestGenerateSafeCellIsClear(t *testing.T) {
	t.Parallel()

	// Sparse boards always admit a zero-count cell anywhere, so the
	// stronger guarantee must hold: the safe cell has no mined
	// neighbors at all.
	params := GameParams{Rows: 9, Columns: 9, MineCount: 10}
	r := rand.New(rand.NewPCG(3, 4))
	for safeRow := range params.Rows {
		for safeCol := range params.Columns {
			grid, err := params.generate(safeRow, safeCol, r)
			if err != nil {
				t.Fatal(err)
			}
			assert.Equal(t, CellState(0), grid[params.index(safeRow, safeCol)])
		}
	}
}

func TestGenerateNeighborCounts(t *testing.T) {
	t.Parallel()

	params := GameParams{Rows: 12, Columns: 8, MineCount: 25}
	r := rand.New(rand.NewPCG(1, 2))
	grid, err := params.generate(0, 0, r)
	if err != nil {
		t.Fatal(err)
	}

	for row := range params.Rows {
		for col := range params.Columns {
			cell := grid[params.index(row, col)]
			if cell == Mine {
				continue
			}
			recount := 0
			for _, n := range params.Neighbors(row, col) {
				if grid[params.index(n[0], n[1])] == Mine {
					recount++
				}
			}
			assert.Equal(t, CellState(recount), cell,
				"count mismatch at %d:%d", row, col)
		}
	}
}

func TestGenerateRejectsBadRequests(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name             string
		params           GameParams
		safeRow, safeCol int
	}{
		{
			name:   "full density",
			params: GameParams{Rows: 4, Columns: 4, MineCount: 16},
		},
		{
			name:   "negative mines",
			params: GameParams{Rows: 4, Columns: 4, MineCount: -1},
		},
		{
			name:   "zero rows",
			params: GameParams{Rows: 0, Columns: 4, MineCount: 1},
		},
		{
			name:    "safe cell out of bounds",
			params:  GameParams{Rows: 4, Columns: 4, MineCount: 2},
			safeRow: 4, safeCol: 0,
		},
		{
			name:    "safe cell negative",
			params:  GameParams{Rows: 4, Columns: 4, MineCount: 2},
			safeRow: -1, safeCol: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			grid, err := test.params.generate(test.safeRow, test.safeCol, r)
			assert.Nil(t, grid)
			var ice InvalidConfigurationError
			assert.ErrorAs(t, err, &ice)
		})
	}
}

func TestGenerateDenseBoardFallsBackToMineFree(t *testing.T) {
	t.Parallel()

	// 3x3 with a mine: every cell neighbors the center, so a
	// zero-count center is impossible. Generation must still succeed
	// with a mine-free center.
	params := GameParams{Rows: 3, Columns: 3, MineCount: 1}
	r := rand.New(rand.NewPCG(1, 2))
	grid, err := params.generate(1, 1, r)
	if err != nil {
		t.Fatal(err)
	}
	assert.NotEqual(t, Mine, grid[params.index(1, 1)])

	mineCells := 0
	for _, c := range grid {
		if c == Mine {
			mineCells++
		}
	}
	assert.Equal(t, 1, mineCells)
}

func TestGenerateDeterministicForFixedSeed(t *testing.T) {
	t.Parallel()

	params := GameParams{Rows: 9, Columns: 9, MineCount: 10}
	a, err := params.generate(4, 4, rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := params.generate(4, 4, rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, a, b)
}
