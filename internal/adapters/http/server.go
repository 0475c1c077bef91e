// Package http exposes the analysis engine over a JSON API and serves the
// embedded single-page front end.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/ishikawa/internal/export"
	"github.com/aretw0/ishikawa/internal/logging"
	"github.com/aretw0/ishikawa/pkg/domain"
)

// Engine defines the interface for the analysis core.
type Engine interface {
	Generate(ctx context.Context, sessionID, incident string, level int) (*domain.Session, error)
	Session(ctx context.Context, id string) (*domain.Session, error)
	Diagram(ctx context.Context, id string) (string, error)
	Report(ctx context.Context, id string) (*domain.Report, error)
}

// Server wires the engine to the HTTP routes.
type Server struct {
	Engine Engine
	Logger *slog.Logger
}

// Option configures the handler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *handlerConfig) { c.logger = logger }
}

// WithMetricsGatherer mounts /metrics for the given registry.
func WithMetricsGatherer(g prometheus.Gatherer) Option {
	return func(c *handlerConfig) { c.gatherer = g }
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	cfg := handlerConfig{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	server := &Server{Engine: engine, Logger: cfg.logger}

	r := chi.NewRouter()
	r.Use(requestLogger(cfg.logger))

	r.Get("/", server.Index)
	r.Post("/api/generate", server.Generate)
	r.Get("/api/sessions/{id}", server.GetSession)
	r.Get("/diagram/{id}.svg", server.GetDiagram)
	r.Get("/report/{id}", server.GetReport)
	r.Get("/health", server.GetHealth)

	if cfg.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request served",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start),
			)
		})
	}
}

// Index serves the embedded front end.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	page, err := webui.ReadFile("webui/index.html")
	if err != nil {
		http.Error(w, "front end unavailable", http.StatusInternalServerError)
		s.Logger.Error("embedded page missing", "error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// GenerateRequest is the POST /api/generate body. Level is decoded as a raw
// number so a non-numeric submission is reported as a validation failure
// rather than a generic decode error.
type GenerateRequest struct {
	Incident  string      `json:"incident"`
	Level     json.Number `json:"level"`
	SessionID string      `json:"session_id,omitempty"`
}

// GenerateResponse carries the updated session plus its view projection.
type GenerateResponse struct {
	Session *domain.Session  `json:"session"`
	View    domain.ViewState `json:"view"`
}

// Generate handles the POST /api/generate request.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	var body GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Generate: Invalid request body", "error", err)
		return
	}

	level, err := body.Level.Int64()
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid analysis level: %v", domain.ErrInvalidLevel), http.StatusBadRequest)
		s.Logger.Warn("Generate: level not a whole number", "level", body.Level.String())
		return
	}

	sessionID := body.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session, err := s.Engine.Generate(r.Context(), sessionID, body.Incident, int(level))
	if err != nil {
		s.writeError(w, "Generate", err)
		return
	}

	writeJSON(w, s.Logger, GenerateResponse{Session: session, View: session.View()})
}

// GetSession handles the GET /api/sessions/{id} request.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.Engine.Session(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, "GetSession", err)
		return
	}
	writeJSON(w, s.Logger, GenerateResponse{Session: session, View: session.View()})
}

// GetDiagram handles the GET /diagram/{id}.svg request.
func (s *Server) GetDiagram(w http.ResponseWriter, r *http.Request) {
	svg, err := s.Engine.Diagram(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, "GetDiagram", err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	fmt.Fprint(w, svg)
}

// GetReport handles the GET /report/{id} request. The page triggers the
// browser print dialog on load so the user lands straight in the export flow.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	report, err := s.Engine.Report(r.Context(), id)
	if err != nil {
		s.writeError(w, "GetReport", err)
		return
	}
	svg, err := s.Engine.Diagram(r.Context(), id)
	if err != nil {
		s.writeError(w, "GetReport", err)
		return
	}

	page, err := export.BuildHTML(report, svg, true)
	if err != nil {
		http.Error(w, fmt.Sprintf("Report error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("GetReport: build failed", "error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, map[string]string{"status": "ok"})
}

// writeError maps domain errors onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyIncident), errors.Is(err, domain.ErrInvalidLevel):
		http.Error(w, err.Error(), http.StatusBadRequest)
		s.Logger.Warn(op+": rejected", "error", err)
	case errors.Is(err, domain.ErrGenerationInFlight), errors.Is(err, domain.ErrNoDiagram):
		http.Error(w, err.Error(), http.StatusConflict)
		s.Logger.Warn(op+": rejected", "error", err)
	case errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, fmt.Sprintf("%s error: %v", op, err), http.StatusInternalServerError)
		s.Logger.Error(op+" failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
