package entity

// Mark is the content of a single board cell.
type Mark string

const (
	EmptyCell Mark = ""

	// AiMark is played by the computer, the maximizing side of the search.
	AiMark Mark = "X"
	// PlayerMark is played by the human, the minimizing side of the search.
	PlayerMark Mark = "O"

	// PlayerTie is stored as the winner of a drawn game.
	PlayerTie Mark = "-"
)

// Outcome classifies a board.
type Outcome string

const (
	OutcomeNotTerminal Outcome = ""
	OutcomeAiWins      Outcome = "ai_wins"
	OutcomePlayerWins  Outcome = "player_wins"
	OutcomeDraw        Outcome = "draw"
)

const BoardSize = 9

// WinCombos are the rows, columns and diagonals, in scan order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid in row-major order: 0,1,2 is the top row.
type Board [BoardSize]Mark

// Winner returns the mark that fills a whole combo, or EmptyCell.
func (that Board) Winner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// IsEmpty reports whether cell is on the board and free.
func (that Board) IsEmpty(cell int) bool {
	return cell >= 0 && cell < len(that) && that[cell] == EmptyCell
}

// EmptyCells returns the free cells in index order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) Outcome() Outcome {
	switch that.Winner() {
	case AiMark:
		return OutcomeAiWins
	case PlayerMark:
		return OutcomePlayerWins
	}

	if that.IsFull() {
		return OutcomeDraw
	}

	return OutcomeNotTerminal
}

// IsTerminal reports whether the game on this board is over.
func (that Board) IsTerminal() bool {
	return that.Outcome() != OutcomeNotTerminal
}

// Opponent returns the other playing mark.
func (that Mark) Opponent() Mark {
	switch that {
	case AiMark:
		return PlayerMark
	case PlayerMark:
		return AiMark
	default:
		return that
	}
}
