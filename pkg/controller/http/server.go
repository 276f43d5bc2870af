package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hubsync-io/hubsync/pkg/controller/webhook"
	"github.com/m-mizutani/ctxlog"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server exposing the health check and
// the notification webhook
func NewServer(ctx context.Context, addr string, webhookHandler *webhook.Handler) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)

	// The directory delivers the validation handshake as GET and
	// notifications as POST on the same endpoint
	router.Route("/hooks", func(r chi.Router) {
		r.Get("/notification", webhookHandler.HandleNotification)
		r.Post("/notification", webhookHandler.HandleNotification)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// Router exposes the handler for tests
func (s *Server) Router() chi.Router {
	return s.router
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "hubsync",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
