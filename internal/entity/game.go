package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX    = "X"
	PlayerO    = "O"
	ResultDraw = "draw"

	EmptyCell = ""
)

// Board is the nine-cell grid, row-major. A cell holds a player mark or EmptyCell.
type Board [9]string

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

// Game holds the authoritative state of one round: the board, whose turn it
// is, the terminal result and the lifecycle status.
type Game struct {
	Board  Board  `json:"board"`
	Turn   string `json:"player_turn"`
	Winner string `json:"winner,omitempty"`
	Status string `json:"status"`
}

func NewGame() *Game {
	return &Game{
		Turn:   PlayerX,
		Status: StatusWaiting,
	}
}

// Reset clears the board for a fresh round. X always opens.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Turn = PlayerX
	that.Winner = EmptyCell
	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}
