package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func newBot() BotService {
	return NewBotService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Opens an empty board on the first cell", func(t *testing.T) {
		// Given: a game where the ai moves first
		game, err := entity.NewGame("123", entity.AiMark)
		require.NoError(t, err)

		// When: the bot makes its turn
		err = newBot().MakeTurn(game)

		// Then: it takes cell 0 and passes the turn
		require.NoError(t, err)
		assert.Equal(t, entity.AiMark, game.Board[0])
		assert.Equal(t, entity.PlayerMark, game.Turn)
		assert.True(t, game.IsOngoing())
	})

	t.Run("Blocks the player", func(t *testing.T) {
		// Given: the player threatens the top row
		game := &entity.Game{
			ID: "123",
			Board: entity.Board{
				entity.PlayerMark, entity.PlayerMark, entity.EmptyCell,
				entity.AiMark, entity.EmptyCell, entity.EmptyCell,
				entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
			},
			Status: entity.StatusOngoing,
			Turn:   entity.AiMark,
		}

		// When: the bot makes its turn
		require.NoError(t, newBot().MakeTurn(game))

		// Then: the row is blocked
		assert.Equal(t, entity.AiMark, game.Board[2])
	})

	t.Run("Wins and finishes the game", func(t *testing.T) {
		// Given: the ai can complete the middle row
		game := &entity.Game{
			ID: "123",
			Board: entity.Board{
				entity.PlayerMark, entity.PlayerMark, entity.EmptyCell,
				entity.AiMark, entity.AiMark, entity.EmptyCell,
				entity.PlayerMark, entity.EmptyCell, entity.EmptyCell,
			},
			Status: entity.StatusOngoing,
			Turn:   entity.AiMark,
		}

		// When: the bot makes its turn
		require.NoError(t, newBot().MakeTurn(game))

		// Then: the game is won by the ai
		assert.Equal(t, entity.AiMark, game.Board[5])
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.AiMark, game.Winner)
	})

	t.Run("Refuses a finished game", func(t *testing.T) {
		game := &entity.Game{
			Board: entity.Board{
				entity.PlayerMark, entity.PlayerMark, entity.PlayerMark,
				entity.AiMark, entity.AiMark,
			},
			Status: entity.StatusFinished,
			Winner: entity.PlayerMark,
		}

		err := newBot().MakeTurn(game)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Refuses when it is not the ai's turn", func(t *testing.T) {
		// Given: a fresh game with the player to move
		game, err := entity.NewGame("123", entity.PlayerMark)
		require.NoError(t, err)

		// When: the bot tries to move
		err = newBot().MakeTurn(game)

		// Then: the turn check of the game rejects it
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, game.Board)
	})
}
