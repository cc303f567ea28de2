package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

//go:generate mockery --name=gameRepoDep --exported=false --with-expecter --output=../../mocks/usecase --outpkg=usecase
type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botServiceDep interface {
	MakeTurn(game *entity.Game) error
}

type GameUseCase interface {
	CreateGame(ctx context.Context, aiFirst bool) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)

	// MakeTurn plays the player's cell and, while the game goes on, the
	// bot's reply.
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)

	// DeleteGame abandons a game before it expires.
	DeleteGame(ctx context.Context, gameID string) error
}

type gameUseCase struct {
	logger *slog.Logger

	gameRepo   gameRepoDep
	botService botServiceDep
}

func NewGameUseCase(logger *slog.Logger, gameRepo gameRepoDep, botService botServiceDep) GameUseCase {
	return &gameUseCase{
		logger:     logger.With("component", "gameUseCase"),
		gameRepo:   gameRepo,
		botService: botService,
	}
}

func (that *gameUseCase) CreateGame(ctx context.Context, aiFirst bool) (*entity.Game, error) {
	first := entity.PlayerMark
	if aiFirst {
		first = entity.AiMark
	}

	game, err := entity.NewGame(uuid.NewString(), first)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsAiTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "aiFirst", aiFirst)

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = game.MakeTurn(entity.PlayerMark, cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsAiTurn() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return game, nil
}

func (that *gameUseCase) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", gameID)

	return nil
}
