package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/service"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type profileUpdateRequest struct {
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

func (that *Server) register(ctx echo.Context) error {
	log := that.logger.With("method", "register")

	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	if req.Username == "" || req.Password == "" {
		return ctx.JSON(http.StatusBadRequest, errorResponse("username and password are required"))
	}

	if err := that.userService.Register(ctx.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		log.Debug("registration rejected", "username", req.Username, "error", err)
		return that.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"username": req.Username,
		"email":    req.Email,
	})
}

func (that *Server) login(ctx echo.Context) error {
	log := that.logger.With("method", "login")

	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	user, err := that.userService.Login(ctx.Request().Context(), req.Username, req.Password)
	if err != nil {
		log.Debug("login rejected", "username", req.Username, "error", err)
		return that.respondError(ctx, err)
	}

	token, err := that.authService.GenerateToken(user.Username)
	if err != nil {
		return that.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"token":    token,
		"username": user.Username,
	})
}

func (that *Server) getProfile(ctx echo.Context) error {
	user, err := that.userService.GetByUsername(ctx.Request().Context(), currentUsername(ctx))
	if err != nil {
		return that.respondError(ctx, err)
	}

	profile, err := that.historyService.Profile(ctx.Request().Context(), user)
	if err != nil {
		return that.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, profile)
}

func (that *Server) updateProfile(ctx echo.Context) error {
	var req profileUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	update := service.ProfileUpdate{
		Email:  req.Email,
		Avatar: req.Avatar,
	}

	user, err := that.userService.UpdateProfile(ctx.Request().Context(), currentUsername(ctx), update)
	if err != nil {
		return that.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, user)
}
