package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
)

type HistoryRepository interface {
	Save(ctx context.Context, username string, record *entity.GameRecord) error
	Aggregate(ctx context.Context, username string) (*entity.Stats, error)
	ListResults(ctx context.Context, username string) ([]string, error)
}

type dbHistory struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) HistoryRepository {
	return &dbHistory{db: db}
}

func (that *dbHistory) Save(ctx context.Context, username string, record *entity.GameRecord) error {
	query := `INSERT INTO game_history (username, result, player_symbol, ai_symbol, moves_count, duration)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := that.db.ExecContext(ctx, query,
		username, record.Result, record.PlayerSymbol, record.AISymbol, record.MovesCount, record.Duration)
	if err != nil {
		return fmt.Errorf("failed to insert game record: %w", err)
	}

	return nil
}

// Aggregate computes the lifetime counters in one pass; averages come back 0
// for a user with no games.
func (that *dbHistory) Aggregate(ctx context.Context, username string) (*entity.Stats, error) {
	query := `SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN result = 'Win' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN result = 'Loss' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN result = 'Draw' THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(moves_count), 0),
			COALESCE(AVG(duration), 0)
		FROM game_history WHERE username = ?`

	var stats entity.Stats
	err := that.db.QueryRowContext(ctx, query, username).
		Scan(&stats.TotalGames, &stats.Wins, &stats.Losses, &stats.Draws, &stats.AvgMoves, &stats.AvgDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate game history: %w", err)
	}

	return &stats, nil
}

// ListResults returns the user's results newest first.
func (that *dbHistory) ListResults(ctx context.Context, username string) ([]string, error) {
	query := `SELECT result FROM game_history WHERE username = ? ORDER BY created_at DESC, id DESC`

	rows, err := that.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query game results: %w", err)
	}
	defer rows.Close()

	var results []string
	for rows.Next() {
		var result string
		if err = rows.Scan(&result); err != nil {
			return nil, fmt.Errorf("failed to scan game result: %w", err)
		}
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate game results: %w", err)
	}

	return results, nil
}
