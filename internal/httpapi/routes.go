package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dashrun/rivals-backend/internal/hub"
	"github.com/dashrun/rivals-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Post("/sessions", CreateSession(h, log))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, log.Named("ws")))
	return r
}
