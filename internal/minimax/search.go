// Package minimax picks the computer's move by searching every continuation
// of a tic-tac-toe board. The computer (entity.AiMark) maximizes, the human
// (entity.PlayerMark) minimizes.
package minimax

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	// winScore is the value of a win reached at depth 0.
	winScore  = 10
	drawScore = 0

	NoMove = -1
)

// Result is the outcome of a single search.
type Result struct {
	Move  int
	Score int
	Nodes int
}

// BestMove returns the empty cell that gives the computer the best result
// under perfect play from both sides. Ties go to the lowest index.
//
// The board must not be terminal. NoMove is returned when it has no empty
// cell.
func BestMove(board entity.Board) int {
	return Search(board).Move
}

// Search is BestMove that also reports the chosen score and the number of
// positions visited.
func Search(board entity.Board) Result {
	s := &searcher{}
	result := Result{Move: NoMove, Score: math.MinInt}

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		next := board
		next[cell] = entity.AiMark

		// strict comparison keeps the first cell among equal scores
		if score := s.minimax(next, 0, false); score > result.Score {
			result.Score = score
			result.Move = cell
		}
	}

	if result.Move == NoMove {
		result.Score = drawScore
	}

	result.Nodes = s.nodes

	return result
}

type searcher struct {
	nodes int
}

// minimax scores board with the given side to move. depth counts the plies
// played since the root of the current search.
func (that *searcher) minimax(board entity.Board, depth int, maximizing bool) int {
	that.nodes++

	switch board.Winner() {
	case entity.AiMark:
		return winScore - depth
	case entity.PlayerMark:
		return depth - winScore
	}

	if board.IsFull() {
		return drawScore
	}

	mark, best := entity.PlayerMark, math.MaxInt
	if maximizing {
		mark, best = entity.AiMark, math.MinInt
	}

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		// board is a copy, so siblings never see this placement
		next := board
		next[cell] = mark

		score := that.minimax(next, depth+1, !maximizing)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
