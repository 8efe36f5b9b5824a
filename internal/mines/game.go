package mines

import (
	"bytes"
	"encoding/gob"
	"math/rand/v2"
)

// Outcome classifies the result of a single operation. Detonating a
// mine is a normal game outcome, not an error. There is no win outcome:
// detecting "all non-mine cells revealed" is a caller-level check over
// the visible grid.
type Outcome int

const (
	Continue Outcome = iota // game goes on
	Neutral                 // no-op, e.g. digging a flagged cell
	Loss                    // dug a mine
	Ok                      // flag placed (or redundantly re-placed)
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Neutral:
		return "neutral"
	case Loss:
		return "loss"
	case Ok:
		return "ok"
	default:
		return "unknown"
	}
}

type GameState struct {
	Dead       bool
	Grid       Grid /* true mine/count layout; nil until the first dig */
	PlayerGrid Grid /* player knowledge */
	GameParams
}

// NewGame creates a session with an entirely unknown visible grid. The
// true grid is deliberately not generated here: it materializes on the
// first dig, seeded so that dig lands on a clear cell.
func NewGame(params *GameParams) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	playerGrid := make(Grid, params.CellCount())
	for i := range playerGrid {
		playerGrid[i] = Unknown
	}
	return &GameState{
		GameParams: *params,
		PlayerGrid: playerGrid,
	}, nil
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Started reports whether the true grid has been generated yet.
func (s *GameState) Started() bool {
	return s.Grid != nil
}

// Dig opens the cell at (row, col). On the first dig of a session the
// true grid is generated with that cell guaranteed clear, drawing from
// rnd. Opening a clear cell flood-fills its whole zero-count region.
func (s *GameState) Dig(row, col int, rnd *rand.Rand) (Outcome, error) {
	if !s.InBounds(row, col) {
		return Neutral, OutOfBoundsError{row, col}
	}

	if s.Grid == nil {
		grid, err := s.GameParams.generate(row, col, rnd)
		if err != nil {
			return Neutral, err
		}
		s.Grid = grid
	}

	i := s.index(row, col)

	/* Flags protect against accidental reveal. */
	if s.PlayerGrid[i] == Flagged {
		return Neutral, nil
	}

	if s.Grid[i] == Mine {
		/*
		 * The player has landed on a mine. Bad luck. Expose the mine
		 * that killed them, but not the rest.
		 */
		s.Dead = true
		s.PlayerGrid[i] = Detonated
		return Loss, nil
	}

	s.reveal(i)
	return Continue, nil
}

/*
 * reveal opens a safe cell, expanding across its zero-count region with
 * an explicit worklist instead of recursing: recursion depth would
 * otherwise track the size of the revealed region. A cell enters the
 * list at most once (its visible state leaves Unknown the moment it is
 * queued), which is what bounds the traversal and makes re-digging an
 * already-open cell a no-op.
 */
func (s *GameState) reveal(start int) {
	if s.Grid[start] != 0 {
		s.PlayerGrid[start] = s.Grid[start]
		return
	}

	todo := newCelltodo(len(s.Grid))
	s.PlayerGrid[start] = queued
	todo.add(start)

	for i := todo.head; i >= 0; i = todo.next[i] {
		s.PlayerGrid[i] = s.Grid[i]
		if s.Grid[i] != 0 {
			continue
		}
		for _, n := range s.Neighbors(i/s.Columns, i%s.Columns) {
			j := s.index(n[0], n[1])
			if s.PlayerGrid[j] == Unknown {
				s.PlayerGrid[j] = queued
				todo.add(j)
			}
		}
	}
}

// Flag marks an unknown cell. Flags are one-way: there is no unflag,
// and dig refuses to open a flagged cell. Flagging anything that is not
// Unknown silently does nothing and still reports Ok.
func (s *GameState) Flag(row, col int) (Outcome, error) {
	if !s.InBounds(row, col) {
		return Neutral, OutOfBoundsError{row, col}
	}
	i := s.index(row, col)
	if s.PlayerGrid[i] == Unknown {
		s.PlayerGrid[i] = Flagged
	}
	return Ok, nil
}

// Forfeit ends the session as a loss and exposes the remaining true
// grid through the visible one. Flags stay where the player put them.
func (s *GameState) Forfeit() {
	s.Dead = true
	if s.Grid == nil {
		return
	}
	for i, c := range s.PlayerGrid {
		if c == Unknown {
			s.PlayerGrid[i] = s.Grid[i]
		}
	}
}

type GridSelector int

const (
	TrueGrid GridSelector = iota
	VisibleGrid
)

// Cells returns a row-major copy of the selected grid. Selecting the
// true grid before the first dig yields nil, since the grid does not
// exist yet.
func (s *GameState) Cells(which GridSelector) Grid {
	var src Grid
	switch which {
	case TrueGrid:
		src = s.Grid
	case VisibleGrid:
		src = s.PlayerGrid
	}
	if src == nil {
		return nil
	}
	out := make(Grid, len(src))
	copy(out, src)
	return out
}
