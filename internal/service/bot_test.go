package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/tictactoe"
)

func TestBotService_ChooseMove(t *testing.T) {
	bot := NewBotService()

	t.Run("Refuses a full board", func(t *testing.T) {
		// Given: no free cell left
		board := entity.Board{"X", "O", "X", "O", "X", "O", "O", "X", "O"}

		// When: the bot is asked to move
		_, err := bot.ChooseMove(board, entity.PlayerO, entity.PlayerX, DifficultyHard)

		// Then: there is nothing to play
		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Easy difficulty plays a legal random cell", func(t *testing.T) {
		// Given: a board with three free cells
		board := entity.Board{"X", "O", "X", "O", "X", "O", "", "", ""}

		// When: the bot moves on easy
		move, err := bot.ChooseMove(board, entity.PlayerO, entity.PlayerX, DifficultyEasy)

		// Then: it picked one of the free cells
		require.NoError(t, err)
		assert.Contains(t, []int{6, 7, 8}, move)
	})

	t.Run("Hard difficulty takes an immediate win", func(t *testing.T) {
		// Given: O can complete the top row right now
		board := entity.Board{"O", "O", "", "X", "X", "", "", "", ""}

		// When: the bot moves on hard
		move, err := bot.ChooseMove(board, entity.PlayerO, entity.PlayerX, DifficultyHard)

		// Then: it wins instead of doing anything else
		require.NoError(t, err)
		assert.Equal(t, 2, move)
	})

	t.Run("Hard difficulty blocks the opponent's winning threat", func(t *testing.T) {
		// Given: X threatens the left column, O has no win available
		board := entity.Board{"X", "", "", "X", "O", "", "", "", ""}

		// When: the bot moves on hard
		move, err := bot.ChooseMove(board, entity.PlayerO, entity.PlayerX, DifficultyHard)

		// Then: it blocks cell 6
		require.NoError(t, err)
		assert.Equal(t, 6, move)
	})

	t.Run("Hard difficulty never loses from an empty board", func(t *testing.T) {
		// Given: two optimal bots playing each other
		var board entity.Board
		marks := [2]string{entity.PlayerX, entity.PlayerO}

		// When: they alternate until the board is terminal
		for turn := 0; ; turn++ {
			mark := marks[turn%2]
			move, err := bot.ChooseMove(board, mark, marks[(turn+1)%2], DifficultyHard)
			if err != nil {
				break
			}
			board[move] = mark

			if result := tictactoe.Evaluate(board); result != entity.EmptyCell {
				// Then: perfect play from both sides can only draw
				assert.Equal(t, entity.ResultDraw, result)
				return
			}
		}

		t.Fatal("game never reached a terminal state")
	})
}
