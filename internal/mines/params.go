package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Rows, Columns, MineCount int
}

func (p GameParams) CellCount() int {
	return p.Rows * p.Columns
}

func (p GameParams) Validate() error {
	if p.Rows <= 0 {
		return InvalidConfigurationError{fmt.Sprintf("rows must be positive, got %d", p.Rows)}
	}
	if p.Columns <= 0 {
		return InvalidConfigurationError{fmt.Sprintf("columns must be positive, got %d", p.Columns)}
	}
	if p.MineCount < 0 || p.MineCount >= p.CellCount() {
		return InvalidConfigurationError{fmt.Sprintf(
			"mine count must be in [0, %d), got %d", p.CellCount(), p.MineCount,
		)}
	}
	return nil
}

func (p GameParams) InBounds(row, col int) bool {
	return row >= 0 && row < p.Rows && col >= 0 && col < p.Columns
}

func (p GameParams) index(row, col int) int {
	return row*p.Columns + col
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Columns, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Rows, &p.Columns, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}
