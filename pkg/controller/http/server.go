package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/umami-lab/tavolo/pkg/usecase"
	"github.com/umami-lab/tavolo/pkg/utils/errutil"
	"github.com/umami-lab/tavolo/pkg/utils/safe"
)

// Server is the HTTP surface of the service: health endpoints plus the
// topic rebuild/query/ask JSON API.
type Server struct {
	router     *chi.Mux
	uc         *usecase.UseCases
	askEnabled bool
}

// Options configures the Server
type Options func(*Server)

// WithAsk enables the answer endpoint. Without it /ask responds 503.
func WithAsk(enabled bool) Options {
	return func(s *Server) {
		s.askEnabled = enabled
	}
}

// New creates the HTTP server around the manager facade.
func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	// Health check endpoints
	r.Get("/health", healthHandler)
	r.Get("/health/ping", healthHandler)

	r.Route("/api/topics", func(r chi.Router) {
		r.Get("/", s.handleListTopics)
		r.Route("/{topic}", func(r chi.Router) {
			r.Post("/rebuild", s.handleRebuild)
			r.Post("/query", s.handleQuery)
			r.Post("/ask", s.handleAsk)
		})
	})

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	safe.Write(r.Context(), w, []byte("1"))
}

func respondJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		_ = errutil.Handle(ctx, err, "failed to encode response")
	}
}
