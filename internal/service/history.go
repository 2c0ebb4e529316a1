package service

import (
	"context"
	"fmt"
	"math"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
)

type historyRepo interface {
	Save(ctx context.Context, username string, record *entity.GameRecord) error
	Aggregate(ctx context.Context, username string) (*entity.Stats, error)
	ListResults(ctx context.Context, username string) ([]string, error)
}

type HistoryService interface {
	SaveResult(ctx context.Context, username string, record *entity.GameRecord) error
	Stats(ctx context.Context, username string) (*entity.Stats, error)
	Profile(ctx context.Context, user *entity.User) (*entity.Profile, error)
}

type historyService struct {
	historyRepo historyRepo
}

func NewHistoryService(historyRepo historyRepo) HistoryService {
	return &historyService{historyRepo: historyRepo}
}

func (that *historyService) SaveResult(ctx context.Context, username string, record *entity.GameRecord) error {
	if err := that.historyRepo.Save(ctx, username, record); err != nil {
		return fmt.Errorf("failed to save game record: %w", err)
	}

	return nil
}

func (that *historyService) Stats(ctx context.Context, username string) (*entity.Stats, error) {
	stats, err := that.historyRepo.Aggregate(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}

	finishStats(stats)

	return stats, nil
}

// Profile assembles the user's public profile: identity fields plus lifetime
// stats and win streaks derived from the full match history.
func (that *historyService) Profile(ctx context.Context, user *entity.User) (*entity.Profile, error) {
	stats, err := that.Stats(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	results, err := that.historyRepo.ListResults(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to list game results: %w", err)
	}

	current, best := winStreaks(results)

	return &entity.Profile{
		Username:      user.Username,
		Email:         user.Email,
		Avatar:        user.Avatar,
		Stats:         *stats,
		CurrentStreak: current,
		BestStreak:    best,
	}, nil
}

func finishStats(stats *entity.Stats) {
	if stats.TotalGames == 0 {
		return
	}

	rate := float64(stats.Wins) / float64(stats.TotalGames) * 100
	stats.WinRate = math.Round(rate*100) / 100
	stats.AvgMoves = math.Round(stats.AvgMoves*100) / 100
	stats.AvgDuration = math.Round(stats.AvgDuration*100) / 100
}

// winStreaks expects results newest first. The current streak counts leading
// wins; the best streak is the longest run of consecutive wins overall.
func winStreaks(results []string) (current, best int) {
	streak := 0
	for _, result := range results {
		if result == entity.ResultWin {
			streak++
			best = max(best, streak)
		} else {
			streak = 0
		}
	}

	for _, result := range results {
		if result != entity.ResultWin {
			break
		}
		current++
	}

	return current, best
}
