package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/protocol"
)

// readyMirror returns a connected mirror playing X with the opponent present.
func readyMirror() *Mirror {
	m := NewMirror()
	m.setConnected(true)
	m.Apply(protocol.Connected(entity.PlayerX, true))

	return m
}

func TestMirror_Apply(t *testing.T) {
	t.Run("connected records the assigned symbol and opponent presence", func(t *testing.T) {
		// Given: a fresh mirror
		m := NewMirror()

		// When: the server assigns O with no opponent yet
		m.Apply(protocol.Connected(entity.PlayerO, false))

		// Then: the local state reflects the assignment
		state := m.Snapshot()
		assert.Equal(t, entity.PlayerO, state.Symbol)
		assert.False(t, state.OpponentJoined)
	})

	t.Run("Server board replaces the optimistic prediction wholesale", func(t *testing.T) {
		// Given: a local move rendered optimistically at cell 0
		m := readyMirror()
		m.predictMove(0)

		// When: the authoritative broadcast omits that move (it was rejected)
		// and instead carries the opponent's accepted move
		board := entity.Board{}
		board[4] = entity.PlayerO
		m.Apply(protocol.ServerMessage{
			Type:   protocol.TypeUpdateBoard,
			Board:  &board,
			Player: entity.PlayerO,
		})

		// Then: the prediction is silently undone, server state wins
		state := m.Snapshot()
		assert.Equal(t, entity.EmptyCell, state.Board[0])
		assert.Equal(t, entity.PlayerO, state.Board[4])
		assert.Equal(t, entity.PlayerX, state.Turn)
	})

	t.Run("game_over freezes the round with the winner", func(t *testing.T) {
		// Given: a mirror mid-round
		m := readyMirror()

		// When: the server declares O the winner
		board := entity.Board{"O", "O", "O", "X", "X", "", "", "", ""}
		m.Apply(protocol.GameOver(board, entity.PlayerO))

		// Then: the winner is set and no further move is allowed
		state := m.Snapshot()
		assert.Equal(t, entity.PlayerO, state.Winner)
		assert.ErrorIs(t, m.CanMove(5), apperror.ErrGameFinished)
	})

	t.Run("game_restart clears the round and hands the opening to X", func(t *testing.T) {
		// Given: a finished round
		m := readyMirror()
		m.Apply(protocol.GameOver(entity.Board{"X", "X", "X", "O", "O", "", "", "", ""}, entity.PlayerX))

		// When: the rematch starts
		m.Apply(protocol.GameRestart(entity.Board{}, entity.PlayerX))

		// Then: the board is clean and X can move again
		state := m.Snapshot()
		assert.Equal(t, entity.Board{}, state.Board)
		assert.Empty(t, state.Winner)
		assert.NoError(t, m.CanMove(4))
	})

	t.Run("Opponent's exit clears opponent presence, own echo does not", func(t *testing.T) {
		// Given: a paired mirror playing X
		m := readyMirror()

		// When: the server echoes X's own exit first
		m.Apply(protocol.PlayerExit(entity.PlayerX))
		assert.True(t, m.Snapshot().OpponentJoined)

		// and then O leaves
		m.Apply(protocol.PlayerExit(entity.PlayerO))

		// Then: the opponent is gone
		assert.False(t, m.Snapshot().OpponentJoined)
	})

	t.Run("Chat messages accumulate in order", func(t *testing.T) {
		// Given: a paired mirror
		m := readyMirror()

		// When: two messages arrive
		m.Apply(protocol.Chat(entity.PlayerX, "hi"))
		m.Apply(protocol.Chat(entity.PlayerO, "hello"))

		// Then: the transcript preserves order and attribution
		transcript := m.Snapshot().Transcript
		require.Len(t, transcript, 2)
		assert.Equal(t, "hi", transcript[0].Text)
		assert.Equal(t, entity.PlayerO, transcript[1].Player)
	})
}

func TestMirror_CanMove(t *testing.T) {
	t.Run("Refuses input before the channel is up", func(t *testing.T) {
		m := NewMirror()

		assert.ErrorIs(t, m.CanMove(0), apperror.ErrNotConnected)
	})

	t.Run("Refuses moves while waiting for the opponent", func(t *testing.T) {
		// Given: connected but alone in the room
		m := NewMirror()
		m.setConnected(true)
		m.Apply(protocol.Connected(entity.PlayerX, false))

		assert.ErrorIs(t, m.CanMove(0), apperror.ErrOpponentNotReady)
	})

	t.Run("Refuses out-of-range and occupied cells", func(t *testing.T) {
		m := readyMirror()
		m.predictMove(4)

		assert.ErrorIs(t, m.CanMove(9), apperror.ErrInvalidCell)
		assert.ErrorIs(t, m.CanMove(-1), apperror.ErrInvalidCell)
		assert.ErrorIs(t, m.CanMove(4), apperror.ErrCellOccupied)
	})

	t.Run("Refuses moves out of turn", func(t *testing.T) {
		// Given: X already moved, O's turn per prediction
		m := readyMirror()
		m.predictMove(0)

		assert.ErrorIs(t, m.CanMove(1), apperror.ErrNotYourTurn)
	})
}
