package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"minefield/internal/repository"
)

// ConnectWS upgrades the request and plays the session interactively:
// each text message carries newline-separated commands, and every
// processed message is answered with the updated session.
func (g *Game) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.logger.Warn("unable to read message", "error", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		ended := session.EndedAt.Valid
		for _, command := range strings.Split(strings.TrimSpace(string(message)), "\n") {
			if ended {
				break
			}
			if err := executeCommand(game, g.rnd, command); err != nil {
				g.logger.Debug("rejected command", "command", command, "error", err)
				if err := c.WriteJSON(wrapError(err)); err != nil {
					g.logger.Error("unable to write error", "error", err)
					return
				}
				continue
			}
			if game.Dead || sessionWon(game) {
				ended = true
			}
		}

		won := sessionWon(game)
		buf, err := game.Bytes()
		if err != nil {
			g.logger.Error("unable to encode game state", "error", err)
			return
		}
		updateParams := repository.UpdateGameSessionParams{
			Dead:  &game.Dead,
			Won:   &won,
			State: buf,
		}
		if ended && !session.EndedAt.Valid {
			now := time.Now().UTC()
			updateParams.EndedAt = &now
		}

		session, err = g.repo.UpdateGameSession(
			r.Context(), session.GameSessionId, updateParams,
		)
		if err != nil {
			g.logger.Error("unable to update game session", "error", err)
			return
		}

		if err := c.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
			g.logger.Error("unable to write session", "error", err)
			return
		}
	}
}
