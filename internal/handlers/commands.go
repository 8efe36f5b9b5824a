package handlers

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"

	"minefield/internal/mines"
)

// Live sessions speak the same one-letter command language as the
// terminal client: "d ROW COL" digs, "f ROW COL" flags, "r" resigns.

var commandNargs = map[string]int{
	"d": 2,
	"f": 2,
	"r": 0,
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

func executeCommand(game *mines.GameState, rnd *rand.Rand, c string) error {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return errors.New("empty command")
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "d":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		_, err = game.Dig(row, col, rnd)
		return err
	case "f":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		_, err = game.Flag(row, col)
		return err
	case "r":
		game.Forfeit()
		return nil
	}
	return errors.New("invalid command")
}
