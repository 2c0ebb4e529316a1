package service

import (
	"context"
	"fmt"
	"time"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/tictactoe"
)

const dailyHintLimit = 3

type hintUsageRepo interface {
	IncrementHintUsage(ctx context.Context, username string, day time.Time) (int, error)
}

type HintResult struct {
	HintMove  int `json:"hint_move"`
	Remaining int `json:"remaining"`
}

type HintService interface {
	Hint(ctx context.Context, username string, board entity.Board, playerMark string) (*HintResult, error)
}

type hintService struct {
	botService BotService
	usageRepo  hintUsageRepo
}

func NewHintService(botService BotService, usageRepo hintUsageRepo) HintService {
	return &hintService{
		botService: botService,
		usageRepo:  usageRepo,
	}
}

// Hint suggests the strongest cell for the player's own mark, capped at three
// hints per user per day.
func (that *hintService) Hint(ctx context.Context, username string, board entity.Board, playerMark string) (*HintResult, error) {
	move, err := that.botService.ChooseMove(board, playerMark, tictactoe.ToggleMark(playerMark), DifficultyHard)
	if err != nil {
		return nil, fmt.Errorf("failed to compute hint: %w", err)
	}

	count, err := that.usageRepo.IncrementHintUsage(ctx, username, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to track hint usage: %w", err)
	}

	if count > dailyHintLimit {
		return nil, apperror.ErrHintLimitReached
	}

	return &HintResult{
		HintMove:  move,
		Remaining: dailyHintLimit - count,
	}, nil
}
