package service

import (
	"math"
	"math/rand"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/tictactoe"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type BotService interface {
	ChooseMove(board entity.Board, aiMark, playerMark, difficulty string) (int, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// ChooseMove picks the bot's next cell: easy plays randomly, medium plays
// minimax half the time, anything else plays optimal minimax.
func (that *botService) ChooseMove(board entity.Board, aiMark, playerMark, difficulty string) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	switch difficulty {
	case DifficultyEasy:
		return availableCells[rand.Intn(len(availableCells))], nil //nolint: gosec // it's ok
	case DifficultyMedium:
		if rand.Float64() < 0.5 { //nolint: gosec // it's ok
			return availableCells[rand.Intn(len(availableCells))], nil //nolint: gosec // it's ok
		}
		return bestMove(board, aiMark, playerMark), nil
	default:
		return bestMove(board, aiMark, playerMark), nil
	}
}

func bestMove(board entity.Board, aiMark, playerMark string) int {
	bestScore := math.MinInt
	move := -1

	for i := range board {
		if board[i] != entity.EmptyCell {
			continue
		}

		board[i] = aiMark
		score := minimax(board, false, aiMark, playerMark)
		board[i] = entity.EmptyCell

		if score > bestScore {
			bestScore = score
			move = i
		}
	}

	return move
}

// minimax scores a position from the bot's perspective: +1 bot win, -1 player
// win, 0 draw. The board is passed by value, so trial moves never leak.
func minimax(board entity.Board, maximizing bool, aiMark, playerMark string) int {
	switch tictactoe.Evaluate(board) {
	case aiMark:
		return 1
	case playerMark:
		return -1
	case entity.ResultDraw:
		return 0
	}

	if maximizing {
		best := math.MinInt
		for i := range board {
			if board[i] != entity.EmptyCell {
				continue
			}
			board[i] = aiMark
			best = max(best, minimax(board, false, aiMark, playerMark))
			board[i] = entity.EmptyCell
		}
		return best
	}

	best := math.MaxInt
	for i := range board {
		if board[i] != entity.EmptyCell {
			continue
		}
		board[i] = playerMark
		best = min(best, minimax(board, true, aiMark, playerMark))
		board[i] = entity.EmptyCell
	}
	return best
}
