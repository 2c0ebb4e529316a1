// Package rest exposes the account and single-player HTTP API: registration,
// login, bot moves, hints, saved games and profile stats.
package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/entity"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/service"
)

const shutdownTimeout = 10 * time.Second

type gamePlayService interface {
	AIMove(ctx context.Context, board entity.Board, playerMark, difficulty string) (*service.AIMoveResult, error)
}

type hintService interface {
	Hint(ctx context.Context, username string, board entity.Board, playerMark string) (*service.HintResult, error)
}

type authService interface {
	GenerateToken(username string) (string, error)
	ParseToken(tokenString string) (string, error)
}

type userService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, username, password string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdateProfile(ctx context.Context, username string, update service.ProfileUpdate) (*entity.User, error)
}

type historyService interface {
	SaveResult(ctx context.Context, username string, record *entity.GameRecord) error
	Stats(ctx context.Context, username string) (*entity.Stats, error)
	Profile(ctx context.Context, user *entity.User) (*entity.Profile, error)
}

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo

	gamePlayService gamePlayService
	hintService     hintService
	authService     authService
	userService     userService
	historyService  historyService
}

func New(
	logger *slog.Logger,
	gamePlay gamePlayService,
	hint hintService,
	auth authService,
	user userService,
	history historyService,
) *Server {
	that := &Server{
		logger:          logger,
		echo:            echo.New(),
		gamePlayService: gamePlay,
		hintService:     hint,
		authService:     auth,
		userService:     user,
		historyService:  history,
	}

	that.echo.HideBanner = true
	that.echo.HidePort = true
	that.echo.Use(middleware.Recover())
	that.echo.Use(middleware.CORS())

	that.echo.GET("/ping", that.ping)

	api := that.echo.Group("/api")
	api.POST("/register", that.register)
	api.POST("/login", that.login)

	authorized := api.Group("", that.requireAuth)
	authorized.POST("/ai-move", that.aiMove)
	authorized.POST("/hint", that.hint)
	authorized.POST("/game/save", that.saveGame)
	authorized.GET("/user/stats", that.userStats)
	authorized.GET("/profile", that.getProfile)
	authorized.PUT("/profile", that.updateProfile)

	return that
}

// Handler exposes the routing, mostly for tests.
func (that *Server) Handler() http.Handler {
	return that.echo
}

func (that *Server) Start(ctx context.Context, port string) error {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := that.echo.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown http server", "error", err)
		}
	}()

	if err := that.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	return nil
}

// requireAuth guards a route group with a Bearer token; the username baked
// into the token becomes the request identity.
func (that *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return ctx.JSON(http.StatusUnauthorized, errorResponse("missing bearer token"))
		}

		username, err := that.authService.ParseToken(token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorResponse("invalid or expired token"))
		}

		ctx.Set(usernameKey, username)

		return next(ctx)
	}
}

const usernameKey = "username"

func currentUsername(ctx echo.Context) string {
	username, _ := ctx.Get(usernameKey).(string)
	return username
}

func errorResponse(message string) map[string]string {
	return map[string]string{"error": message}
}

// respondError maps domain errors onto HTTP statuses; anything unrecognized
// is a 500 with the detail kept out of the response body.
func (that *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, apperror.ErrUserExists):
		return ctx.JSON(http.StatusConflict, errorResponse("username is already taken"))
	case errors.Is(err, apperror.ErrUnauthorized):
		return ctx.JSON(http.StatusUnauthorized, errorResponse("invalid credentials"))
	case errors.Is(err, apperror.ErrHintLimitReached):
		return ctx.JSON(http.StatusForbidden, errorResponse("daily hint limit reached"))
	case errors.Is(err, apperror.ErrNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse("not found"))
	case errors.Is(err, apperror.ErrNoAvailableMoves):
		return ctx.JSON(http.StatusBadRequest, errorResponse("no available moves"))
	default:
		that.logger.Error("request failed", "path", ctx.Path(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

func (that *Server) ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}
