package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
)

func TestHistoryRepository_Aggregate(t *testing.T) {
	t.Run("Counters and averages cover only the requested user", func(t *testing.T) {
		ctx := context.Background()
		db := newTestDB(t)
		historyRepo := NewHistoryRepository(db)

		// Given: alice played three games, bob one
		records := []entity.GameRecord{
			{Result: entity.ResultWin, MovesCount: 5, Duration: 20},
			{Result: entity.ResultLoss, MovesCount: 7, Duration: 40},
			{Result: entity.ResultTie, MovesCount: 9, Duration: 60},
		}
		for i := range records {
			require.NoError(t, historyRepo.Save(ctx, "alice", &records[i]))
		}
		require.NoError(t, historyRepo.Save(ctx, "bob", &entity.GameRecord{Result: entity.ResultWin, MovesCount: 3}))

		// When: alice's stats are aggregated
		stats, err := historyRepo.Aggregate(ctx, "alice")

		// Then: bob's game is not counted
		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalGames)
		assert.Equal(t, 1, stats.Wins)
		assert.Equal(t, 1, stats.Losses)
		assert.Equal(t, 1, stats.Draws)
		assert.InDelta(t, 7.0, stats.AvgMoves, 0.001)
		assert.InDelta(t, 40.0, stats.AvgDuration, 0.001)
	})

	t.Run("A user with no games aggregates to zeros", func(t *testing.T) {
		ctx := context.Background()
		historyRepo := NewHistoryRepository(newTestDB(t))

		stats, err := historyRepo.Aggregate(ctx, "nobody")

		require.NoError(t, err)
		assert.Zero(t, stats.TotalGames)
		assert.Zero(t, stats.AvgMoves)
	})
}

func TestHistoryRepository_ListResults(t *testing.T) {
	t.Run("Results come back newest first", func(t *testing.T) {
		ctx := context.Background()
		historyRepo := NewHistoryRepository(newTestDB(t))

		// Given: three games saved in order
		for _, result := range []string{entity.ResultLoss, entity.ResultWin, entity.ResultWin} {
			require.NoError(t, historyRepo.Save(ctx, "alice", &entity.GameRecord{Result: result}))
		}

		// When: listing
		results, err := historyRepo.ListResults(ctx, "alice")

		// Then: the most recent game leads
		require.NoError(t, err)
		assert.Equal(t, []string{entity.ResultWin, entity.ResultWin, entity.ResultLoss}, results)
	})

	t.Run("No games is an empty list", func(t *testing.T) {
		ctx := context.Background()
		historyRepo := NewHistoryRepository(newTestDB(t))

		results, err := historyRepo.ListResults(ctx, "nobody")

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
