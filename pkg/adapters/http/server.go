// Package http serves the filter page, its JSON API and the session API
// over a chi router.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aretw0/wilayah/internal/metrics"
	"github.com/aretw0/wilayah/internal/presentation/web"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/aretw0/wilayah/pkg/ports"
	"github.com/aretw0/wilayah/pkg/session"
	"github.com/go-chi/chi/v5"
)

// Engine is the selection core as the HTTP host needs it.
type Engine interface {
	ports.SelectionEngine
	Load(ctx context.Context, loader ports.DatasetLoader) error
	Available() bool
}

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	engine   Engine
	loader   ports.DatasetLoader
	renderer *web.Renderer
	metrics  *metrics.Metrics
	sessions *session.Manager
	streams  *StreamManager
	logger   *slog.Logger
	version  string
}

// Option configures a Server.
type Option func(*Server)

// WithLoader enables POST /admin/reload.
func WithLoader(l ports.DatasetLoader) Option {
	return func(s *Server) { s.loader = l }
}

// WithMetrics records request durations and mounts GET /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithSessions mounts the session API under /api/sessions.
func WithSessions(m *session.Manager) Option {
	return func(s *Server) { s.sessions = m }
}

// WithRenderer replaces the page renderer.
func WithRenderer(r *web.Renderer) Option {
	return func(s *Server) { s.renderer = r }
}

// WithLogger sets the logger used for access logs and handler errors.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithVersion is reported by GET /health.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// NewServer creates a Server for engine.
func NewServer(engine Engine, opts ...Option) (*Server, error) {
	s := &Server{
		engine: engine,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.streams = NewStreamManager(s.logger)
	if s.renderer == nil {
		r, err := web.NewRenderer()
		if err != nil {
			return nil, err
		}
		s.renderer = r
	}
	return s, nil
}

// NewHandler is NewServer followed by Handler.
func NewHandler(engine Engine, opts ...Option) (http.Handler, error) {
	s, err := NewServer(engine, opts...)
	if err != nil {
		return nil, err
	}
	return s.Handler(), nil
}

// Streams exposes the diff broadcaster of the session API.
func (s *Server) Streams() *StreamManager {
	return s.streams
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(AccessMiddleware(s.logger))
	if s.metrics != nil {
		r.Use(MetricsMiddleware(s.metrics))
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Get("/", s.Page)
	r.Get("/static/style.css", s.StyleSheet)
	r.Get("/health", s.GetHealth)
	r.Post("/admin/reload", s.Reload)

	r.Route("/api", func(r chi.Router) {
		r.Use(enableCORS)
		r.Get("/provinces", s.ListProvinces)
		r.Get("/provinces/{id}/regencies", s.ListRegencies)
		r.Get("/regencies/{id}/districts", s.ListDistricts)
		r.Get("/view", s.GetView)
		r.Post("/select", s.Select)

		if s.sessions != nil {
			r.Route("/sessions", func(r chi.Router) {
				r.Get("/", s.ListSessions)
				r.Get("/{session}", s.GetSession)
				r.Delete("/{session}", s.DeleteSession)
				r.Post("/{session}/select", s.SelectSession)
				r.Get("/{session}/events", s.SubscribeEvents)
			})
		}
	})

	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// errorResponse is the JSON body of every API error.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// dataset returns the loaded dataset or answers 503.
func (s *Server) dataset(w http.ResponseWriter) (*domain.Dataset, bool) {
	ds := s.engine.Dataset()
	if ds == nil {
		s.writeError(w, http.StatusServiceUnavailable, domain.ErrDatasetUnavailable.Error())
		return nil, false
	}
	return ds, true
}
