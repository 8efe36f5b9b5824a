package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"minefield/internal/config"
	"minefield/internal/middleware"
	"minefield/internal/mines"
	"minefield/internal/repository"
)

type Game struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewGame(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *Game {
	return &Game{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

// sessionWon is the caller-level win check: the engine itself only
// reports losses, a session is won once every non-mine cell is open.
func sessionWon(game *mines.GameState) bool {
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

func (g *Game) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	params := dto.GameParams()
	game, err := mines.NewGame(&params)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	var sessionParams repository.CreateGameSessionParams
	if claims, loggedIn := middleware.PlayerClaims(r.Context()); loggedIn {
		sessionParams.PlayerId = &claims.PlayerId
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, sessionParams)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g *Game) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *mines.GameState, bool) {
	gameSessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), gameSessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	game, err := session.GameState()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}

	return session, game, true
}

func (g *Game) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

var errSessionEnded = errors.New("session has ended")

// move runs a single engine operation against a stored session and
// persists the result.
func (g *Game) move(
	w http.ResponseWriter, r *http.Request,
	op func(game *mines.GameState, cell CellDTO) (mines.Outcome, error),
) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if session.EndedAt.Valid {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, g.logger, wrapError(errSessionEnded))
		return
	}

	cell, err := ParseCellDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	outcome, err := op(game, cell)
	if err != nil {
		// OutOfBounds and degenerate generation requests are the
		// caller's fault; nothing has been mutated.
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	won := sessionWon(game)

	buf, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to encode game state", "error", err)
		return
	}

	updateParams := repository.UpdateGameSessionParams{
		Dead:  &game.Dead,
		Won:   &won,
		State: buf,
	}
	if game.Dead || won {
		now := time.Now().UTC()
		updateParams.EndedAt = &now
	}

	session, err = g.repo.UpdateGameSession(
		r.Context(), session.GameSessionId, updateParams,
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game).WithOutcome(outcome))
}

func (g *Game) Dig(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, func(game *mines.GameState, cell CellDTO) (mines.Outcome, error) {
		return game.Dig(cell.Row, cell.Col, g.rnd)
	})
}

func (g *Game) Flag(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, func(game *mines.GameState, cell CellDTO) (mines.Outcome, error) {
		return game.Flag(cell.Row, cell.Col)
	})
}

func (g *Game) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if session.EndedAt.Valid {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, g.logger, wrapError(errSessionEnded))
		return
	}

	game.Forfeit()

	buf, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to encode game state", "error", err)
		return
	}

	now := time.Now().UTC()
	won := false
	session, err = g.repo.UpdateGameSession(
		r.Context(), session.GameSessionId, repository.UpdateGameSessionParams{
			Dead:    &game.Dead,
			Won:     &won,
			EndedAt: &now,
			State:   buf,
		},
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g *Game) Highscores(w http.ResponseWriter, r *http.Request) {
	var filter repository.HighscoreFilter

	query := r.URL.Query()
	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if seed := query.Get("board"); seed != "" {
		params, err := mines.ParseSeed(seed)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.logger, wrapError(err))
			return
		}
		filter.GameParams = params
	}

	highscores, err := g.repo.FetchHighscores(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch highscores", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, highscores)
}
