package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellStateString(t *testing.T) {
	assert.Equal(t, "#", Unknown.String())
	assert.Equal(t, "F", Flagged.String())
	assert.Equal(t, "*", Mine.String())
	assert.Equal(t, "!", Detonated.String())
	assert.Equal(t, " ", CellState(0).String())
	for n := 1; n <= 8; n++ {
		assert.Len(t, CellState(n).String(), 1)
	}
}

func TestGridToString(t *testing.T) {
	g := Grid{
		Unknown, 1, Mine,
		0, Flagged, 2,
	}
	assert.Equal(t, "# 1 * \n  F 2 \n", g.ToString(3))
}
