package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"minefield/internal/mines"
)

func TestRenderGrid(t *testing.T) {
	t.Parallel()

	g := mines.Grid{
		mines.Unknown, 1, 0,
		mines.Flagged, 2, mines.Mine,
	}

	var b strings.Builder
	renderGrid(&b, g, 3)

	want := "" +
		"  | 0  \n" +
		"  | 012\n" +
		"--|----\n" +
		" 0| #1 \n" +
		" 1| F2*\n"
	assert.Equal(t, want, b.String())
}

func TestRenderGridWideBoardRuler(t *testing.T) {
	t.Parallel()

	g := make(mines.Grid, 12)
	for i := range g {
		g[i] = mines.Unknown
	}

	var b strings.Builder
	renderGrid(&b, g, 12)

	lines := strings.Split(b.String(), "\n")
	// Tens digit appears above every tenth column.
	assert.Equal(t, "  | 0         1 ", lines[0])
	assert.Equal(t, "  | 012345678901", lines[1])
}

func TestParseMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		op       string
		row, col int
		wantErr  bool
	}{
		{line: "d 3, 4", op: "d", row: 3, col: 4},
		{line: "d 3 4", op: "d", row: 3, col: 4},
		{line: "f 0,0", op: "f", row: 0, col: 0},
		{line: "q", op: "q"},
		{line: "d", wantErr: true},
		{line: "x 1 2", wantErr: true},
		{line: "d one two", wantErr: true},
		{line: "q 1", wantErr: true},
	}

	for _, test := range tests {
		op, row, col, err := parseMove(test.line)
		if test.wantErr {
			assert.Error(t, err, "line %q", test.line)
			continue
		}
		assert.NoError(t, err, "line %q", test.line)
		assert.Equal(t, test.op, op)
		assert.Equal(t, test.row, row)
		assert.Equal(t, test.col, col)
	}
}
