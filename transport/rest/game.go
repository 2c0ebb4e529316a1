package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/service"
)

type aiMoveRequest struct {
	Board        entity.Board `json:"board"`
	PlayerSymbol string       `json:"player_symbol"`
	Difficulty   string       `json:"difficulty"`
}

type hintRequest struct {
	Board        entity.Board `json:"board"`
	PlayerSymbol string       `json:"player_symbol"`
}

func (that *Server) aiMove(ctx echo.Context) error {
	var req aiMoveRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid board"))
	}

	if req.PlayerSymbol == "" {
		req.PlayerSymbol = entity.PlayerX
	}
	if req.Difficulty == "" {
		req.Difficulty = service.DifficultyHard
	}

	result, err := that.gamePlayService.AIMove(ctx.Request().Context(), req.Board, req.PlayerSymbol, req.Difficulty)
	if err != nil {
		return that.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

func (that *Server) hint(ctx echo.Context) error {
	var req hintRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid board"))
	}

	if req.PlayerSymbol == "" {
		req.PlayerSymbol = entity.PlayerX
	}

	result, err := that.hintService.Hint(ctx.Request().Context(), currentUsername(ctx), req.Board, req.PlayerSymbol)
	if err != nil {
		return that.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

func (that *Server) saveGame(ctx echo.Context) error {
	var record entity.GameRecord
	if err := ctx.Bind(&record); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	if record.PlayerSymbol == "" {
		record.PlayerSymbol = entity.PlayerX
	}
	if record.AISymbol == "" {
		record.AISymbol = entity.PlayerO
	}

	err := that.historyService.SaveResult(ctx.Request().Context(), currentUsername(ctx), &record)
	if err != nil {
		return that.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "Game saved!"})
}

func (that *Server) userStats(ctx echo.Context) error {
	stats, err := that.historyService.Stats(ctx.Request().Context(), currentUsername(ctx))
	if err != nil {
		return that.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, stats)
}
