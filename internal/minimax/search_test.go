package minimax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	x = entity.AiMark
	o = entity.PlayerMark
	e = entity.EmptyCell
)

func TestBestMove_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		board    entity.Board
		move     int
		score    int
		anyScore bool
	}{
		{
			name:  "empty board falls back to the lowest index",
			board: entity.Board{},
			move:  0,
			score: 0,
		},
		{
			name: "completes its own row",
			board: entity.Board{
				x, x, e,
				o, o, e,
				e, e, e,
			},
			move:  2,
			score: 10,
		},
		{
			name: "immediate win beats a block that wins two plies later",
			board: entity.Board{
				o, o, e,
				x, x, e,
				e, e, e,
			},
			move:  5,
			score: 10,
		},
		{
			name: "blocks the player's row",
			board: entity.Board{
				o, o, e,
				x, e, e,
				e, e, e,
			},
			move:     2,
			anyScore: true,
		},
		{
			name: "lost position still picks the lowest index",
			board: entity.Board{
				o, o, e,
				o, x, e,
				e, e, x,
			},
			move:  2,
			score: -9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: searching the board
			result := Search(tt.board)

			// Then: the expected cell is chosen
			assert.Equal(t, tt.move, result.Move)
			assert.Equal(t, tt.move, BestMove(tt.board))

			if !tt.anyScore {
				assert.Equal(t, tt.score, result.Score)
			}
		})
	}
}

func TestSearch_BlockingScore(t *testing.T) {
	// Given: the player threatens the top row
	board := entity.Board{
		o, o, e,
		x, e, e,
		e, e, e,
	}

	// When: searching
	result := Search(board)

	// Then: blocking is strictly better than letting the player win next ply
	assert.Equal(t, 2, result.Move)
	assert.Greater(t, result.Score, -9)
}

func TestSearch_SingleEmptyCell(t *testing.T) {
	// Given: a board with only the last cell free and no winner after it
	board := entity.Board{
		x, o, x,
		x, o, o,
		o, x, e,
	}

	// When: searching
	result := Search(board)

	// Then: the only cell is taken, it draws and one position was scored
	assert.Equal(t, Result{Move: 8, Score: 0, Nodes: 1}, result)
}

func TestSearch_FullBoard(t *testing.T) {
	board := entity.Board{
		x, o, x,
		x, o, o,
		o, x, x,
	}

	assert.Equal(t, Result{Move: NoMove, Score: 0, Nodes: 0}, Search(board))
	assert.Equal(t, NoMove, BestMove(board))
}

func TestMinimax_TerminalScores(t *testing.T) {
	t.Run("AI win is worth less the deeper it is", func(t *testing.T) {
		board := entity.Board{x, x, x, o, o}
		s := &searcher{}

		assert.Equal(t, 10, s.minimax(board, 0, false))
		assert.Equal(t, 7, s.minimax(board, 3, false))
	})

	t.Run("Player win is worth more the deeper it is", func(t *testing.T) {
		board := entity.Board{o, o, o, x, x}
		s := &searcher{}

		assert.Equal(t, -10, s.minimax(board, 0, true))
		assert.Equal(t, -8, s.minimax(board, 2, true))
	})

	t.Run("Full board without a winner is a draw", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}
		s := &searcher{}

		assert.Equal(t, 0, s.minimax(board, 5, true))
		assert.Equal(t, 1, s.nodes)
	})
}

func TestBestMove_AllReachableBoards(t *testing.T) {
	// Given: every non-terminal board reachable from an empty one,
	// whichever side moves first
	boards := make(map[entity.Board]struct{})
	collectBoards(entity.Board{}, o, boards)
	collectBoards(entity.Board{}, x, boards)
	require.NotEmpty(t, boards)

	for board := range boards {
		original := board

		// When: searching twice
		first := BestMove(board)
		second := BestMove(board)

		// Then: the move is an empty cell, stable, and the board is untouched
		require.True(t, board.IsEmpty(first), "board %v move %d", board, first)
		require.Equal(t, first, second, "board %v", board)
		require.Equal(t, original, board)
	}
}

func TestBestMove_NeverLoses(t *testing.T) {
	t.Run("Player moves first", func(t *testing.T) {
		assertNeverLoses(t, entity.Board{}, false)
	})

	t.Run("AI moves first", func(t *testing.T) {
		assertNeverLoses(t, entity.Board{}, true)
	})
}

func TestBestMove_DrawsAgainstPerfectPlayer(t *testing.T) {
	for _, aiFirst := range []bool{true, false} {
		// Given: an empty board
		var board entity.Board
		aiToMove := aiFirst

		// When: both sides play their best move until the game ends
		for !board.IsTerminal() {
			if aiToMove {
				board[BestMove(board)] = x
			} else {
				board[perfectPlayerMove(board)] = o
			}
			aiToMove = !aiToMove
		}

		// Then: it is a draw
		assert.Equal(t, entity.OutcomeDraw, board.Outcome(), "ai first: %v, board %v", aiFirst, board)
	}
}

func collectBoards(board entity.Board, toMove entity.Mark, seen map[entity.Board]struct{}) {
	if board.IsTerminal() {
		return
	}

	if _, ok := seen[board]; ok {
		return
	}
	seen[board] = struct{}{}

	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = toMove
		collectBoards(next, toMove.Opponent(), seen)
	}
}

// assertNeverLoses plays the engine against every possible player reply.
func assertNeverLoses(t *testing.T, board entity.Board, aiToMove bool) {
	t.Helper()

	if board.IsTerminal() {
		require.NotEqual(t, entity.OutcomePlayerWins, board.Outcome(), "board %v", board)
		return
	}

	if aiToMove {
		board[BestMove(board)] = x
		assertNeverLoses(t, board, false)

		return
	}

	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = o
		assertNeverLoses(t, next, true)
	}
}

// perfectPlayerMove mirrors the engine for the minimizing side.
func perfectPlayerMove(board entity.Board) int {
	s := &searcher{}
	move, best := NoMove, 0

	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = o

		score := s.minimax(next, 0, true)
		if move == NoMove || score < best {
			move, best = cell, score
		}
	}

	return move
}
