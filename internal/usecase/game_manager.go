package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, id string, game *tictactoe.GameHistory) error
	GetByID(ctx context.Context, id string) (*tictactoe.GameHistory, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameState is everything a client needs to render one game.
type GameState struct {
	ID        string               `json:"id"`
	View      tictactoe.View       `json:"view"`
	History   []tictactoe.MoveItem `json:"history"`
	Ascending bool                 `json:"ascending"`
}

// GameManager owns the live games of the presentation layer.
// Calls are serialized so every mutation sees the state left by the previous one.
type GameManager struct {
	logger    *slog.Logger
	gameRepo  gameRepo
	ascending bool

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, ascending bool) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:  gameRepo,
		ascending: ascending,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	gameID := uuid.NewString()
	game := tictactoe.NewGameHistory(tictactoe.WithAscendingOrder(that.ascending))

	if err := that.gameRepo.CreateOrUpdate(ctx, gameID, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "game_id", gameID)

	return snapshot(gameID, game), nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return snapshot(id, game), nil
}

// PlayMove applies a move. An ignored move is not an error; the unchanged state is returned.
func (that *GameManager) PlayMove(ctx context.Context, id string, cell int) (*GameState, error) {
	log := that.logger.With("method", "PlayMove", "game_id", id)

	return that.update(ctx, id, func(game *tictactoe.GameHistory) error {
		if !game.PlayMove(cell) {
			log.Debug("move ignored", "cell", cell, "current_move", game.CurrentMove())
			return nil
		}

		if view := game.CurrentView(); view.IsTerminal {
			log.Info("game finished", "status", view.StatusText, "moves", view.CurrentMove)
		}

		return nil
	})
}

func (that *GameManager) JumpTo(ctx context.Context, id string, move int) (*GameState, error) {
	return that.update(ctx, id, func(game *tictactoe.GameHistory) error {
		if err := game.JumpTo(move); err != nil {
			that.logger.Warn("rejected jump", "game_id", id, "error", err)
			return fmt.Errorf("failed to jump: %w", err)
		}

		return nil
	})
}

func (that *GameManager) ToggleOrder(ctx context.Context, id string) (*GameState, error) {
	return that.update(ctx, id, func(game *tictactoe.GameHistory) error {
		game.ToggleOrder()
		return nil
	})
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "game_id", id)

	return nil
}

func (that *GameManager) update(ctx context.Context, id string, apply func(*tictactoe.GameHistory) error) (*GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = apply(game); err != nil {
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, id, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return snapshot(id, game), nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*tictactoe.GameHistory, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func snapshot(id string, game *tictactoe.GameHistory) *GameState {
	return &GameState{
		ID:        id,
		View:      game.CurrentView(),
		History:   slices.Collect(game.HistoryView()),
		Ascending: game.IsAscending(),
	}
}
