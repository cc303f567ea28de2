package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var (
	errMissingGameID = errors.New("game_id is required")
	errMissingCell   = errors.New("cell is required")
)

func (that *Server) handleNewGame(ctx context.Context, payload Payload) (*entity.Game, error) {
	game, err := that.gameUseCase.CreateGame(ctx, payload.AIFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

func (that *Server) handleGetGame(ctx context.Context, payload Payload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, errMissingGameID
	}

	game, err := that.gameUseCase.GetGame(ctx, payload.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *Server) handleGameTurn(ctx context.Context, payload Payload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, errMissingGameID
	}

	if payload.Cell == nil {
		return nil, errMissingCell
	}

	game, err := that.gameUseCase.MakeTurn(ctx, payload.GameID, *payload.Cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return game, nil
}
