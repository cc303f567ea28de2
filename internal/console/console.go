// Package console plays a game against the bot on a terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrInputClosed = errors.New("input closed before the game ended")

type botService interface {
	MakeTurn(game *entity.Game) error
}

type Session struct {
	logger *slog.Logger
	bot    botService

	in  *bufio.Scanner
	out io.Writer
}

func NewSession(logger *slog.Logger, bot botService, in io.Reader, out io.Writer) *Session {
	return &Session{
		logger: logger.With("component", "console"),
		bot:    bot,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Play runs one game, player first, and returns it once it is finished.
func (that *Session) Play() (*entity.Game, error) {
	game, err := entity.NewGame("console", entity.PlayerMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.printf("Welcome to Tic-Tac-Toe!\n")
	that.printBoard(game.Board)

	for {
		cell, err := that.readMove(game.Board)
		if err != nil {
			return game, err
		}

		if err = game.MakeTurn(entity.PlayerMark, cell); err != nil {
			return game, fmt.Errorf("failed to make turn: %w", err)
		}

		if game.IsFinished() {
			that.printBoard(game.Board)
			that.printResult(game)

			return game, nil
		}

		before := game.Board
		if err = that.bot.MakeTurn(game); err != nil {
			return game, fmt.Errorf("bot failed to make turn: %w", err)
		}

		that.printf("AI chooses position %d.\n", changedCell(before, game.Board)+1)
		that.printBoard(game.Board)

		if game.IsFinished() {
			that.printResult(game)

			return game, nil
		}
	}
}

// readMove prompts until the player names a free cell as 1-9.
func (that *Session) readMove(board entity.Board) (int, error) {
	for {
		that.printf("Enter your move (1-9): ")

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read move: %w", err)
			}

			return 0, ErrInputClosed
		}

		number, err := strconv.Atoi(strings.TrimSpace(that.in.Text()))
		if err != nil {
			that.printf("Invalid input. Please enter a number between 1 and 9.\n")
			continue
		}

		if cell := number - 1; board.IsEmpty(cell) {
			return cell, nil
		}

		that.logger.Debug("rejected move", "input", number)
		that.printf("Invalid move. Try again.\n")
	}
}

func (that *Session) printBoard(board entity.Board) {
	for row := 0; row < 3; row++ {
		if row > 0 {
			that.printf("--+---+--\n")
		}

		that.printf("%s | %s | %s\n", cellText(board[row*3]), cellText(board[row*3+1]), cellText(board[row*3+2]))
	}
}

func (that *Session) printResult(game *entity.Game) {
	switch game.Winner {
	case entity.PlayerMark:
		that.printf("Congratulations, you win!\n")
	case entity.AiMark:
		that.printf("AI wins!\n")
	default:
		that.printf("It's a tie!\n")
	}
}

func (that *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func cellText(mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return " "
	}

	return string(mark)
}

func changedCell(before, after entity.Board) int {
	for i := range before {
		if before[i] != after[i] {
			return i
		}
	}

	return -1
}
