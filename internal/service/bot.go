package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn plays the minimax move for entity.AiMark on game.
func (that *botService) MakeTurn(game *entity.Game) error {
	if game.IsFinished() || game.Board.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if game.Turn != entity.AiMark {
		return apperror.ErrNotYourTurn
	}

	result := minimax.Search(game.Board)
	if result.Move == minimax.NoMove {
		return ErrNoAvailableMoves
	}

	that.logger.Debug("bot move chosen",
		"gameID", game.ID,
		"cell", result.Move,
		"score", result.Score,
		"nodes", result.Nodes,
	)

	if err := game.MakeTurn(entity.AiMark, result.Move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
