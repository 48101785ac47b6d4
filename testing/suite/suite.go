package suite

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-history/internal/repository"
	"github.com/rocketscienceinc/tictactoe-history/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-history/transport/rest"
	"github.com/rocketscienceinc/tictactoe-history/transport/websocket"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Games  *usecase.GameManager
	Server *httptest.Server
}

// New starts the whole HTTP stack in process and tears it down with the test.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))

	games := usecase.NewGameManager(logger, repository.NewGameRepository(), true)
	router := rest.NewRouter(logger, games, websocket.New(logger, games))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Games:  games,
		Server: server,
	}
}

// URL joins path onto the test server address.
func (that *Suite) URL(path string) string {
	return that.Server.URL + path
}

// WebSocketURL is the ws:// address of the socket endpoint.
func (that *Suite) WebSocketURL() string {
	return "ws" + strings.TrimPrefix(that.Server.URL, "http") + "/ws"
}
