package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

const maxBodyBytes = 1 << 10

type uGame interface {
	NewGame(ctx context.Context) (*usecase.GameState, error)
	GetGame(ctx context.Context, id string) (*usecase.GameState, error)
	PlayMove(ctx context.Context, id string, cell int) (*usecase.GameState, error)
	JumpTo(ctx context.Context, id string, move int) (*usecase.GameState, error)
	ToggleOrder(ctx context.Context, id string) (*usecase.GameState, error)
	DeleteGame(ctx context.Context, id string) error
}

type handlers struct {
	logger *slog.Logger
	uGame  uGame
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Move *int `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	state, err := that.uGame.NewGame(r.Context())
	that.respond(w, http.StatusCreated, state, err)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	state, err := that.uGame.GetGame(r.Context(), chi.URLParam(r, "id"))
	that.respond(w, http.StatusOK, state, err)
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.respond(w, http.StatusOK, nil, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) playMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decode(w, r, &req); err != nil {
		that.respond(w, http.StatusOK, nil, err)
		return
	}

	if req.Cell == nil {
		that.respond(w, http.StatusOK, nil, fmt.Errorf("%w: cell is required", apperror.ErrInvalidPayload))
		return
	}

	state, err := that.uGame.PlayMove(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	that.respond(w, http.StatusOK, state, err)
}

func (that *handlers) jumpTo(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := decode(w, r, &req); err != nil {
		that.respond(w, http.StatusOK, nil, err)
		return
	}

	if req.Move == nil {
		that.respond(w, http.StatusOK, nil, fmt.Errorf("%w: move is required", apperror.ErrInvalidPayload))
		return
	}

	state, err := that.uGame.JumpTo(r.Context(), chi.URLParam(r, "id"), *req.Move)
	that.respond(w, http.StatusOK, state, err)
}

func (that *handlers) toggleOrder(w http.ResponseWriter, r *http.Request) {
	state, err := that.uGame.ToggleOrder(r.Context(), chi.URLParam(r, "id"))
	that.respond(w, http.StatusOK, state, err)
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	return nil
}

// respond writes body with status, or maps err to an error status.
func (that *handlers) respond(w http.ResponseWriter, status int, body any, err error) {
	if err != nil {
		status = statusFor(err)
		if status == http.StatusInternalServerError {
			that.logger.Error("request failed", "error", err)
		}
		body = errorResponse{Error: err.Error()}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		that.logger.Error("failed to encode response", "error", encErr)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrOutOfRange), errors.Is(err, apperror.ErrInvalidPayload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
