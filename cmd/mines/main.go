package main

import (
	"bufio"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"minefield/internal/config"
	"minefield/internal/mines"
)

var (
	log = logrus.New()

	boardSeed   string
	levelName   string
	presetsPath string
	logPath     string
)

func init() {
	flag.StringVar(&boardSeed, "board", "", "board as ROWS:COLUMNS:MINES, overrides -level")
	flag.StringVar(&levelName, "level", "beginner", "difficulty preset name")
	flag.StringVar(&presetsPath, "presets", "", "YAML file with difficulty presets")
	flag.StringVar(&logPath, "log", "minefield.log", "log file path")
}

// The screen belongs to the board, so logs go to a rotating file.
func setupLogging() {
	log.SetOutput(io.Discard)
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.TextFormatter{DisableColors: true},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to open log file:", err)
		os.Exit(1)
	}
	log.AddHook(hook)
}

func loadParams() (*mines.GameParams, error) {
	if boardSeed != "" {
		return mines.ParseSeed(boardSeed)
	}

	presets := config.DefaultPresets()
	if presetsPath != "" {
		var err error
		if presets, err = config.LoadPresets(presetsPath); err != nil {
			return nil, err
		}
	}

	preset, err := config.FindPreset(presets, levelName)
	if err != nil {
		return nil, err
	}
	params := preset.GameParams()
	return &params, nil
}

func cls() {
	fmt.Print("\x1b[1;1H\x1b[2J")
}

func printBoard(game *mines.GameState) {
	cls()
	renderGrid(os.Stdout, game.Cells(mines.VisibleGrid), game.Columns)
}

func gameWon(game *mines.GameState) bool {
	if game.Dead || !game.Started() {
		return false
	}
	revealed := 0
	for _, c := range game.PlayerGrid {
		if 0 <= c && c <= 8 {
			revealed++
		}
	}
	return revealed == game.CellCount()-game.MineCount
}

// parseMove reads "d ROW, COL", "f ROW, COL" (comma optional) or "q".
func parseMove(line string) (op string, row, col int, err error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	switch {
	case len(fields) == 1 && fields[0] == "q":
		return "q", 0, 0, nil
	case len(fields) == 3 && (fields[0] == "d" || fields[0] == "f"):
		op = fields[0]
		if _, err = fmt.Sscanf(fields[1]+" "+fields[2], "%d %d", &row, &col); err != nil {
			return "", 0, 0, fmt.Errorf("coordinates must be integers")
		}
		return op, row, col, nil
	default:
		return "", 0, 0, fmt.Errorf("commands: d ROW, COL | f ROW, COL | q")
	}
}

func play(game *mines.GameState, rnd *rand.Rand, input io.Reader) {
	scanner := bufio.NewScanner(input)
	printBoard(game)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		op, row, col, err := parseMove(line)
		if err != nil {
			fmt.Println(err)
			continue
		}

		var outcome mines.Outcome
		switch op {
		case "q":
			game.Forfeit()
			printBoard(game)
			fmt.Println("resigned")
			return
		case "d":
			outcome, err = game.Dig(row, col, rnd)
		case "f":
			outcome, err = game.Flag(row, col)
		}
		if err != nil {
			log.WithField("command", line).Info("rejected move: ", err)
			fmt.Println(err)
			continue
		}
		log.WithFields(logrus.Fields{
			"command": line,
			"outcome": outcome.String(),
		}).Info("move")

		if outcome == mines.Loss {
			game.Forfeit()
			printBoard(game)
			fmt.Println("BOOM! you lose")
			return
		}

		printBoard(game)

		if gameWon(game) {
			fmt.Println("all clear, you win!")
			return
		}
	}
}

func main() {
	flag.Parse()
	setupLogging()

	params, err := loadParams()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	game, err := mines.NewGame(params)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.WithField("board", params.Seed()).Info("new game")

	rnd := rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
	play(game, rnd, os.Stdin)
}
