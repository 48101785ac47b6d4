package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the game API. socket, when not nil, is mounted on /ws.
func NewRouter(logger *slog.Logger, uGame uGame, socket http.Handler) http.Handler {
	h := &handlers{
		logger: logger.With("component", "rest"),
		uGame:  uGame,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)

	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", h.createGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getGame)
			r.Delete("/", h.deleteGame)
			r.Post("/moves", h.playMove)
			r.Post("/jump", h.jumpTo)
			r.Post("/order", h.toggleOrder)
		})
	})

	if socket != nil {
		r.Handle("/ws", socket)
	}

	return r
}
