package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/tictactoe"
)

type scoreRepo interface {
	IncrementScore(ctx context.Context, result string) error
	GetScores(ctx context.Context) (entity.Scores, error)
}

// AIMoveResult mirrors the single-player response shape: the bot's move, the
// resulting board (cleared once a round ends), the winner if any, and the
// running score tally.
type AIMoveResult struct {
	Move   *int          `json:"move"`
	Board  entity.Board  `json:"board"`
	Winner string        `json:"winner,omitempty"`
	Scores entity.Scores `json:"scores"`
}

type GamePlayService interface {
	AIMove(ctx context.Context, board entity.Board, playerMark, difficulty string) (*AIMoveResult, error)
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService
	scoreRepo  scoreRepo
}

func NewGamePlayService(logger *slog.Logger, botService BotService, scoreRepo scoreRepo) GamePlayService {
	return &gamePlayService{
		logger:     logger,
		botService: botService,
		scoreRepo:  scoreRepo,
	}
}

// AIMove plays one stateless single-player exchange: the client submits its
// board after the human move, the bot answers with its own. A terminal board
// updates the tally and comes back cleared, ready for the next round.
func (that *gamePlayService) AIMove(ctx context.Context, board entity.Board, playerMark, difficulty string) (*AIMoveResult, error) {
	aiMark := tictactoe.ToggleMark(playerMark)

	// the submitted board may already be terminal from the human's move
	if result := tictactoe.Evaluate(board); result != entity.EmptyCell {
		return &AIMoveResult{
			Board:  entity.Board{},
			Winner: result,
			Scores: that.tally(ctx, result),
		}, nil
	}

	move, err := that.botService.ChooseMove(board, aiMark, playerMark, difficulty)
	if err != nil {
		return nil, fmt.Errorf("bot failed to choose move: %w", err)
	}

	board[move] = aiMark

	if result := tictactoe.Evaluate(board); result != entity.EmptyCell {
		return &AIMoveResult{
			Move:   &move,
			Board:  entity.Board{},
			Winner: result,
			Scores: that.tally(ctx, result),
		}, nil
	}

	return &AIMoveResult{
		Move:   &move,
		Board:  board,
		Scores: that.currentScores(ctx),
	}, nil
}

func (that *gamePlayService) tally(ctx context.Context, result string) entity.Scores {
	if err := that.scoreRepo.IncrementScore(ctx, result); err != nil {
		that.logger.Error("failed to increment score", "result", result, "error", err)
	}

	return that.currentScores(ctx)
}

func (that *gamePlayService) currentScores(ctx context.Context) entity.Scores {
	scores, err := that.scoreRepo.GetScores(ctx)
	if err != nil {
		that.logger.Error("failed to get scores", "error", err)
	}

	return scores
}
