package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedRoundTrip(t *testing.T) {
	t.Parallel()

	p := GameParams{Rows: 16, Columns: 30, MineCount: 99}
	parsed, err := ParseSeed(p.Seed())
	assert.NoError(t, err)
	assert.Equal(t, &p, parsed)
}

func TestParseSeedRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, seed := range []string{"", "9", "9:9", "a:b:c", "9x9x10"} {
		_, err := ParseSeed(seed)
		assert.Error(t, err, "seed %q", seed)
	}
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	p := GameParams{Rows: 3, Columns: 3, MineCount: 0}

	tests := []struct {
		name     string
		row, col int
		want     [][2]int
	}{
		{
			name: "center has all eight",
			row:  1, col: 1,
			want: [][2]int{
				{0, 0}, {0, 1}, {0, 2},
				{1, 0}, {1, 2},
				{2, 0}, {2, 1}, {2, 2},
			},
		},
		{
			name: "corner has three",
			row:  0, col: 0,
			want: [][2]int{{0, 1}, {1, 0}, {1, 1}},
		},
		{
			name: "edge has five",
			row:  0, col: 1,
			want: [][2]int{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}},
		},
		{
			name: "outside cell still yields in-bounds neighbors",
			row:  -1, col: 0,
			want: [][2]int{{0, 0}, {0, 1}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.ElementsMatch(t, test.want, p.Neighbors(test.row, test.col))
		})
	}
}

func TestInBounds(t *testing.T) {
	t.Parallel()

	p := GameParams{Rows: 2, Columns: 3, MineCount: 0}
	assert.True(t, p.InBounds(0, 0))
	assert.True(t, p.InBounds(1, 2))
	assert.False(t, p.InBounds(-1, 0))
	assert.False(t, p.InBounds(2, 0))
	assert.False(t, p.InBounds(0, 3))
}
