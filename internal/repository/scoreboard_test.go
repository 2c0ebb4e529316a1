package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/testing/suite"
)

func TestScoreboardRepository(t *testing.T) {
	ctx, st := suite.New(t)

	scoreboardRepo := NewScoreboardRepository(st.Storage)

	// Given: an empty scoreboard
	scores, err := scoreboardRepo.GetScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Scores{}, scores)

	// When: a few rounds are tallied
	require.NoError(t, scoreboardRepo.IncrementScore(ctx, entity.PlayerX))
	require.NoError(t, scoreboardRepo.IncrementScore(ctx, entity.PlayerX))
	require.NoError(t, scoreboardRepo.IncrementScore(ctx, entity.PlayerO))
	require.NoError(t, scoreboardRepo.IncrementScore(ctx, entity.ResultDraw))

	// Then: the counters reflect every increment
	scores, err = scoreboardRepo.GetScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Scores{X: 2, O: 1, Draw: 1}, scores)
}
