package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/config"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/repository"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/repository/storage"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/room"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/service"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/transport/rest"
	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	userRepo := repository.NewUserRepository(sqliteStorage.Connection)
	historyRepo := repository.NewHistoryRepository(sqliteStorage.Connection)
	scoreboardRepo := repository.NewScoreboardRepository(redisStorage.Connection)
	hintUsageRepo := repository.NewHintUsageRepository(redisStorage.Connection)

	botService := service.NewBotService()
	gamePlayService := service.NewGamePlayService(logger, botService, scoreboardRepo)
	hintService := service.NewHintService(botService, hintUsageRepo)
	authService := service.NewAuthService(conf.JWTSecretKey)
	userService := service.NewUserService(userRepo)
	historyService := service.NewHistoryService(historyRepo)

	rooms := room.NewManager(logger, conf.Room.GracePeriod)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.New(logger, gamePlayService, hintService, authService, userService, historyService)
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, rooms)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
