package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrUnknownGameStatus = errors.New("unknown game status")
)

type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Winner Mark   `json:"winner"`
	Status string `json:"status"`
	Turn   Mark   `json:"player_turn"`
}

// NewGame returns an ongoing game with an empty board and first to move.
func NewGame(id string, first Mark) (*Game, error) {
	if first != AiMark && first != PlayerMark {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMark, first)
	}

	return &Game{
		ID:     id,
		Board:  Board{},
		Turn:   first,
		Status: StatusOngoing,
	}, nil
}

func (that *Game) UpdateGameState() {
	switch outcome := that.Board.Outcome(); outcome {
	// one side completed a combo
	case OutcomeAiWins, OutcomePlayerWins:
		that.Winner = that.Board.Winner()
		that.Status = StatusFinished
		that.Turn = EmptyCell
	case OutcomeDraw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(mark Mark, cell int) error {
	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = mark
	that.Turn = mark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) Outcome() Outcome {
	return that.Board.Outcome()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsAiTurn() bool {
	return that.IsOngoing() && that.Turn == AiMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
