package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

func (that *Server) handleNewGame(ctx context.Context, _ *connection, _ RequestPayload) (*usecase.GameState, error) {
	state, err := that.uGame.NewGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return state, nil
}

func (that *Server) handleView(ctx context.Context, conn *connection, payload RequestPayload) (*usecase.GameState, error) {
	gameID, err := resolveGameID(conn, payload)
	if err != nil {
		return nil, err
	}

	return that.uGame.GetGame(ctx, gameID)
}

func (that *Server) handleGameTurn(ctx context.Context, conn *connection, payload RequestPayload) (*usecase.GameState, error) {
	gameID, err := resolveGameID(conn, payload)
	if err != nil {
		return nil, err
	}

	if payload.Cell == nil {
		return nil, fmt.Errorf("%w: cell is required", apperror.ErrInvalidPayload)
	}

	return that.uGame.PlayMove(ctx, gameID, *payload.Cell)
}

func (that *Server) handleJump(ctx context.Context, conn *connection, payload RequestPayload) (*usecase.GameState, error) {
	gameID, err := resolveGameID(conn, payload)
	if err != nil {
		return nil, err
	}

	if payload.Move == nil {
		return nil, fmt.Errorf("%w: move is required", apperror.ErrInvalidPayload)
	}

	return that.uGame.JumpTo(ctx, gameID, *payload.Move)
}

func (that *Server) handleOrder(ctx context.Context, conn *connection, payload RequestPayload) (*usecase.GameState, error) {
	gameID, err := resolveGameID(conn, payload)
	if err != nil {
		return nil, err
	}

	return that.uGame.ToggleOrder(ctx, gameID)
}
