package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minefield/internal/mines"
)

// 3x3 session with one mine at 0:0 and a pre-built true grid, so
// command behavior is deterministic without a random source.
func newTestGame(t *testing.T) *mines.GameState {
	t.Helper()
	params := mines.GameParams{Rows: 3, Columns: 3, MineCount: 1}
	game, err := mines.NewGame(&params)
	if err != nil {
		t.Fatal(err)
	}
	game.Grid = mines.Grid{
		mines.Mine, 1, 0,
		1, 1, 0,
		0, 0, 0,
	}
	return game
}

func TestExecuteCommand(t *testing.T) {
	t.Parallel()

	t.Run("dig", func(t *testing.T) {
		t.Parallel()
		game := newTestGame(t)
		assert.NoError(t, executeCommand(game, nil, "d 2 2"))
		assert.Equal(t, mines.CellState(0), game.PlayerGrid[8])
	})

	t.Run("flag", func(t *testing.T) {
		t.Parallel()
		game := newTestGame(t)
		assert.NoError(t, executeCommand(game, nil, "f 0 0"))
		assert.Equal(t, mines.Flagged, game.PlayerGrid[0])
	})

	t.Run("resign", func(t *testing.T) {
		t.Parallel()
		game := newTestGame(t)
		assert.NoError(t, executeCommand(game, nil, "r"))
		assert.True(t, game.Dead)
	})

	t.Run("out of bounds dig surfaces the error", func(t *testing.T) {
		t.Parallel()
		game := newTestGame(t)
		var oob mines.OutOfBoundsError
		assert.ErrorAs(t, executeCommand(game, nil, "d 3 0"), &oob)
	})

	t.Run("malformed input", func(t *testing.T) {
		t.Parallel()
		game := newTestGame(t)
		for _, command := range []string{"", "x 1 1", "d", "d 1", "d a b", "f 1 2 3", "r 1"} {
			assert.Error(t, executeCommand(game, nil, command), "command %q", command)
		}
	})
}

func TestSessionWon(t *testing.T) {
	t.Parallel()

	game := newTestGame(t)
	assert.False(t, sessionWon(game))

	// The zero region at 2:2 floods across every non-mine cell.
	assert.NoError(t, executeCommand(game, nil, "d 2 2"))
	assert.True(t, sessionWon(game))
	assert.False(t, game.Dead)
}

func TestSessionWonFalseOnLoss(t *testing.T) {
	t.Parallel()

	game := newTestGame(t)
	assert.NoError(t, executeCommand(game, nil, "d 0 0"))
	assert.True(t, game.Dead)
	assert.False(t, sessionWon(game))
}

func TestSessionWonFalseBeforeFirstDig(t *testing.T) {
	t.Parallel()

	params := mines.GameParams{Rows: 3, Columns: 3, MineCount: 1}
	game, err := mines.NewGame(&params)
	if err != nil {
		t.Fatal(err)
	}
	assert.False(t, sessionWon(game))
}
