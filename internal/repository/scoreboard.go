package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
)

const scoresKey = "singleplayer:scores"

// ScoreboardRepository keeps the global single-player tally in a redis hash
// keyed by round outcome: "X", "O" or "draw".
type ScoreboardRepository interface {
	IncrementScore(ctx context.Context, result string) error
	GetScores(ctx context.Context) (entity.Scores, error)
}

type dbScoreboard struct {
	client *redis.Client
}

func NewScoreboardRepository(client *redis.Client) ScoreboardRepository {
	return &dbScoreboard{
		client: client,
	}
}

func (that *dbScoreboard) IncrementScore(ctx context.Context, result string) error {
	err := that.client.HIncrBy(ctx, scoresKey, result, 1).Err()
	if err != nil {
		return fmt.Errorf("failed to increment score: %w", err)
	}

	return nil
}

func (that *dbScoreboard) GetScores(ctx context.Context) (entity.Scores, error) {
	fields, err := that.client.HGetAll(ctx, scoresKey).Result()
	if err != nil {
		return entity.Scores{}, fmt.Errorf("failed to get scores: %w", err)
	}

	return entity.Scores{
		X:    parseCount(fields[entity.PlayerX]),
		O:    parseCount(fields[entity.PlayerO]),
		Draw: parseCount(fields[entity.ResultDraw]),
	}, nil
}

func parseCount(value string) int {
	count, _ := strconv.Atoi(value)
	return count
}
