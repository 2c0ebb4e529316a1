package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
)

type fakeHintUsage struct {
	counts map[string]int
}

func (that *fakeHintUsage) IncrementHintUsage(_ context.Context, username string, _ time.Time) (int, error) {
	if that.counts == nil {
		that.counts = make(map[string]int)
	}
	that.counts[username]++
	return that.counts[username], nil
}

func TestHintService_Hint(t *testing.T) {
	t.Run("Hint suggests the player's own winning cell", func(t *testing.T) {
		// Given: X can complete the top row
		svc := NewHintService(NewBotService(), &fakeHintUsage{})
		board := entity.Board{"X", "X", "", "O", "O", "", "", "", ""}

		// When: the player asks for a hint
		result, err := svc.Hint(context.Background(), "alice", board, entity.PlayerX)

		// Then: the hint is the winning cell, two hints remain today
		require.NoError(t, err)
		assert.Equal(t, 2, result.HintMove)
		assert.Equal(t, 2, result.Remaining)
	})

	t.Run("Fourth hint of the day is refused", func(t *testing.T) {
		// Given: a player who already used the daily quota
		svc := NewHintService(NewBotService(), &fakeHintUsage{})
		board := entity.Board{"X", "", "", "", "", "", "", "", ""}

		for range 3 {
			_, err := svc.Hint(context.Background(), "bob", board, entity.PlayerX)
			require.NoError(t, err)
		}

		// When: they ask once more
		_, err := svc.Hint(context.Background(), "bob", board, entity.PlayerX)

		// Then: the quota holds
		assert.ErrorIs(t, err, apperror.ErrHintLimitReached)
	})

	t.Run("Quotas are tracked per user", func(t *testing.T) {
		// Given: one exhausted user and one fresh one
		svc := NewHintService(NewBotService(), &fakeHintUsage{})
		board := entity.Board{"X", "", "", "", "", "", "", "", ""}

		for range 3 {
			_, err := svc.Hint(context.Background(), "bob", board, entity.PlayerX)
			require.NoError(t, err)
		}

		// When: the fresh user asks
		result, err := svc.Hint(context.Background(), "carol", board, entity.PlayerX)

		// Then: their own quota is untouched
		require.NoError(t, err)
		assert.Equal(t, 2, result.Remaining)
	})

	t.Run("Remaining counts down to zero", func(t *testing.T) {
		svc := NewHintService(NewBotService(), &fakeHintUsage{})
		board := entity.Board{"X", "", "", "", "", "", "", "", ""}

		for want := 2; want >= 0; want-- {
			result, err := svc.Hint(context.Background(), "dave", board, entity.PlayerX)
			require.NoError(t, err)
			assert.Equal(t, want, result.Remaining)
		}
	})
}
