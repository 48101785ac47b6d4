package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, id string, game *tictactoe.GameHistory) error
	GetByID(ctx context.Context, id string) (*tictactoe.GameHistory, error)
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// memGame keeps live games for the lifetime of the process.
type memGame struct {
	mu    sync.RWMutex
	games map[string]*tictactoe.GameHistory
}

func NewGameRepository() GameRepository {
	return &memGame{
		games: make(map[string]*tictactoe.GameHistory),
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, id string, game *tictactoe.GameHistory) error {
	if id == "" {
		return fmt.Errorf("%w: empty game id", apperror.ErrInvalidPayload)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.games["game:"+id] = game

	return nil
}

func (that *memGame) GetByID(_ context.Context, id string) (*tictactoe.GameHistory, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	game, ok := that.games["game:"+id]
	if !ok {
		return nil, fmt.Errorf("%w: id %s", apperror.ErrGameNotFound, id)
	}

	return game, nil
}

func (that *memGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	gameKey := "game:" + id
	if _, ok := that.games[gameKey]; !ok {
		return fmt.Errorf("%w: id %s", apperror.ErrGameNotFound, id)
	}

	delete(that.games, gameKey)

	return nil
}

func (that *memGame) Count(_ context.Context) (int, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.games), nil
}
