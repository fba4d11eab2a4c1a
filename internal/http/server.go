package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/davidbz/pronto/internal/config"
	"github.com/davidbz/pronto/internal/http/middleware"
	"github.com/davidbz/pronto/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config  config.ServerConfig
	handler *Handler
	srv     *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	handler *Handler,
	middlewares middleware.Middleware,
) *Server {
	s := &Server{
		config:  *cfg,
		handler: handler,
	}

	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      middlewares(s.Routes()),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	return s
}

// Routes registers every endpoint on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/run", s.handler.HandleRun)
	mux.HandleFunc("GET /api/job/{jobID}", s.handler.HandleJobStatus)
	mux.HandleFunc("POST /api/webhooks/jobs/{jobID}", s.handler.HandleJobWebhook)
	mux.HandleFunc("GET /api/playground/models", s.handler.HandlePlaygroundModels)
	mux.HandleFunc("POST /api/keys/validate", s.handler.HandleValidateKey)

	mux.HandleFunc("GET /api/prompts", s.handler.HandleListPrompts)
	mux.HandleFunc("GET /api/prompts/{promptID}", s.handler.HandleGetPrompt)
	mux.HandleFunc("GET /api/prompts/by-model/{model}", s.handler.HandlePromptsByModel)
	mux.HandleFunc("GET /api/models", s.handler.HandleListModels)

	mux.HandleFunc("GET /health", s.handler.HandleHealth)
	mux.HandleFunc("GET /{$}", s.handler.HandleRoot)

	return mux
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
