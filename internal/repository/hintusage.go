package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// HintUsageRepository counts hints per user per calendar day. Counters expire
// at local midnight, so the quota resets by itself.
type HintUsageRepository interface {
	IncrementHintUsage(ctx context.Context, username string, day time.Time) (int, error)
}

type dbHintUsage struct {
	client *redis.Client
}

func NewHintUsageRepository(client *redis.Client) HintUsageRepository {
	return &dbHintUsage{
		client: client,
	}
}

func (that *dbHintUsage) IncrementHintUsage(ctx context.Context, username string, day time.Time) (int, error) {
	key := fmt.Sprintf("hints:%s:%s", username, day.Format("2006-01-02"))

	count, err := that.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment hint usage: %w", err)
	}

	if count == 1 {
		midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).AddDate(0, 0, 1)
		if err = that.client.ExpireAt(ctx, key, midnight).Err(); err != nil {
			return 0, fmt.Errorf("failed to set hint usage expiry: %w", err)
		}
	}

	return int(count), nil
}
