package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
)

const (
	ActionGameNew  = "game:new"
	ActionGameGet  = "game:get"
	ActionGameTurn = "game:turn"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is used for requests and responses alike.
type Payload struct {
	GameID  string       `json:"game_id,omitempty"`
	AIFirst bool         `json:"ai_first,omitempty"`
	Cell    *int         `json:"cell,omitempty"`
	Game    *entity.Game `json:"game,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action, text string) error {
	return that.sendMessage(conn, action, Payload{Error: text})
}

// errorText keeps domain errors readable and hides everything else.
func errorText(err error) string {
	for _, known := range []error{
		repository.ErrGameNotFound,
		apperror.ErrGameFinished,
		apperror.ErrNotYourTurn,
		apperror.ErrCellOccupied,
		entity.ErrInvalidCell,
		errMissingGameID,
		errMissingCell,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return "internal error"
}
