package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	ws "github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
)

type uGame interface {
	NewGame(ctx context.Context) (*usecase.GameState, error)
	GetGame(ctx context.Context, id string) (*usecase.GameState, error)
	PlayMove(ctx context.Context, id string, cell int) (*usecase.GameState, error)
	JumpTo(ctx context.Context, id string, move int) (*usecase.GameState, error)
	ToggleOrder(ctx context.Context, id string) (*usecase.GameState, error)
}

type handlerFunc func(ctx context.Context, conn *connection, payload RequestPayload) (*usecase.GameState, error)

// connection remembers the game a client is looking at.
type connection struct {
	conn   *ws.Conn
	gameID string
}

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader ws.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: ws.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[ActionNew] = server.handleNewGame
	server.handlers[ActionView] = server.handleView
	server.handlers[ActionTurn] = server.handleGameTurn
	server.handlers[ActionJump] = server.handleJump
	server.handlers[ActionOrder] = server.handleOrder

	return server
}

// ServeHTTP upgrades the connection and processes messages until the client goes away.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(r.Context(), &connection{conn: conn}); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := conn.conn.ReadJSON(&message); err != nil {
			if ws.IsCloseError(err, ws.CloseNormalClosure, ws.CloseGoingAway) {
				log.Info("WebSocket connection closed")
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		state, err := that.dispatch(ctx, conn, &message)
		if err != nil {
			log.Warn("error processing message", "action", message.Action, "error", err)
			if err = that.send(conn, ActionError, ResponsePayload{Error: err.Error()}); err != nil {
				return err
			}
			continue
		}

		if err = that.send(conn, message.Action, ResponsePayload{Game: state}); err != nil {
			return err
		}
	}
}

func (that *Server) dispatch(ctx context.Context, conn *connection, message *Message) (*usecase.GameState, error) {
	handler, ok := that.handlers[message.Action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, message.Action)
	}

	payload, err := message.decodePayload()
	if err != nil {
		return nil, err
	}

	state, err := handler(ctx, conn, payload)
	if err != nil {
		return nil, err
	}

	conn.gameID = state.ID

	return state, nil
}

func (that *Server) send(conn *connection, action string, payload ResponsePayload) error {
	message, err := newMessage(action, payload)
	if err != nil {
		return err
	}

	if err = conn.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

var errNoGame = errors.New("no game bound to connection")

func resolveGameID(conn *connection, payload RequestPayload) (string, error) {
	if payload.GameID != "" {
		return payload.GameID, nil
	}

	if conn.gameID == "" {
		return "", fmt.Errorf("%w: %w", apperror.ErrGameNotFound, errNoGame)
	}

	return conn.gameID, nil
}
