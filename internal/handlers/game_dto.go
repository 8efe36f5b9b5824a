package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"minefield/internal/mines"
	"minefield/internal/repository"
)

type CreateNewGameDTO struct {
	Rows      int `schema:"rows,required"`
	Columns   int `schema:"columns,required"`
	MineCount int `schema:"mine_count,required"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto CreateNewGameDTO) GameParams() mines.GameParams {
	return mines.GameParams{
		Rows:      dto.Rows,
		Columns:   dto.Columns,
		MineCount: dto.MineCount,
	}
}

type CellDTO struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParseCellDTO(src map[string][]string) (CellDTO, error) {
	var dto CellDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type GameSessionDTO struct {
	GameSessionId string     `json:"game_session_id"`
	Grid          mines.Grid `json:"grid"`
	Rows          int        `json:"rows"`
	Columns       int        `json:"columns"`
	MineCount     int        `json:"mine_count"`
	Started       bool       `json:"started"`
	Dead          bool       `json:"dead"`
	Won           bool       `json:"won"`
	Outcome       string     `json:"outcome,omitempty"`
	StartedAt     int64      `json:"started_at"`
	EndedAt       *int64     `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	session *repository.GameSession, game *mines.GameState,
) *GameSessionDTO {
	var endedAt *int64
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		endedAt = &e
	}
	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Grid:          game.Cells(mines.VisibleGrid),
		Rows:          game.Rows,
		Columns:       game.Columns,
		MineCount:     game.MineCount,
		Started:       game.Started(),
		Dead:          game.Dead,
		Won:           session.Won,
		StartedAt:     session.StartedAt.Time.UnixMilli(),
		EndedAt:       endedAt,
	}
}

func (dto *GameSessionDTO) WithOutcome(outcome mines.Outcome) *GameSessionDTO {
	dto.Outcome = outcome.String()
	return dto
}
