package entity

import "time"

// Game results as recorded from the player's side.
const (
	ResultWin  = "Win"
	ResultLoss = "Loss"
	ResultTie  = "Draw"
)

type User struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`

	PasswordHash string `json:"-"`
}

// GameRecord is one finished single-player match, persisted fire-and-forget.
type GameRecord struct {
	Result       string    `json:"result"` // Win, Loss or Draw from the player's side
	PlayerSymbol string    `json:"player_symbol"`
	AISymbol     string    `json:"ai_symbol"`
	MovesCount   int       `json:"moves_count"`
	Duration     float64   `json:"duration"` // seconds
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

type Stats struct {
	TotalGames  int     `json:"total_games"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Draws       int     `json:"draws"`
	WinRate     float64 `json:"win_rate"`
	AvgMoves    float64 `json:"avg_moves"`
	AvgDuration float64 `json:"avg_duration"`
}

type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`

	Stats
	CurrentStreak int `json:"current_streak"`
	BestStreak    int `json:"best_streak"`
}

// Scores is the running single-player tally kept across rounds.
type Scores struct {
	X    int `json:"X"`
	O    int `json:"O"`
	Draw int `json:"draw"`
}
