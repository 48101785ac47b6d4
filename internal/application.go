package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/repository"
	"github.com/rocketscienceinc/tictactoe-history/internal/tui"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-history/transport/rest"
	"github.com/rocketscienceinc/tictactoe-history/transport/websocket"
)

// RunApp - runs the HTTP and WebSocket server until SIGINT or SIGTERM.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gameRepo := repository.NewGameRepository()
	gameUseCase := usecase.NewGameManager(logger, gameRepo, conf.IsAscending())

	router := rest.NewRouter(logger, gameUseCase, websocket.New(logger, gameUseCase))

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err := rest.Start(ctx, conf.HTTPPort, router, conf.ShutdownTimeout); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// RunTerminal - plays a local game in the terminal.
func RunTerminal(conf *config.Config) error {
	if err := tui.Run(conf.IsAscending()); err != nil {
		return fmt.Errorf("terminal game failed: %w", err)
	}

	return nil
}
