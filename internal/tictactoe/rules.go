// Package tictactoe holds the pure move/result rules. The same functions run
// on the server for authoritative arbitration and in the client mirror for
// optimistic prediction, so the two sides can never disagree on semantics.
package tictactoe

import (
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// MakeTurn applies one move to the game. A move is accepted iff the game is
// not finished, the cell index is in range, it is the mark's turn and the
// cell is empty; a rejected move leaves the game untouched.
func MakeTurn(game *entity.Game, mark string, cell int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(game, mark, cell); err != nil {
		return err
	}

	game.Board[cell] = mark
	updateGameStatus(game, mark)

	return nil
}

func validateMove(game *entity.Game, mark string, cell int) error {
	if cell < 0 || cell >= len(game.Board) {
		return apperror.ErrInvalidCell
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

func updateGameStatus(game *entity.Game, mark string) {
	switch result := Evaluate(game.Board); result {
	case entity.PlayerX, entity.PlayerO, entity.ResultDraw:
		game.Winner = result
		game.Status = entity.StatusFinished
		game.Turn = entity.EmptyCell
	default:
		game.Turn = ToggleMark(mark)
	}
}

// Evaluate reports the result of a board: the winning mark, ResultDraw when
// all nine cells are filled with no winning triple, or EmptyCell while the
// round is still in progress.
func Evaluate(board entity.Board) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	if board.IsFull() {
		return entity.ResultDraw
	}

	return entity.EmptyCell
}

func ToggleMark(mark string) string {
	if mark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
