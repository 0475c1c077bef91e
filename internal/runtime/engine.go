// Package runtime wires the analysis state machine to its ports: the tree
// provider, the session store and the diagram renderer. All UI layers (HTTP,
// CLI, MCP) drive this engine; none of them hold analysis state of their own.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aretw0/ishikawa/internal/observability"
	"github.com/aretw0/ishikawa/pkg/domain"
	"github.com/aretw0/ishikawa/pkg/ports"
)

// Engine executes analysis sessions.
type Engine struct {
	provider ports.TreeProvider
	store    ports.SessionStore
	renderer ports.Renderer
	metrics  *observability.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger injects a logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithMetrics injects registered Prometheus collectors.
func WithMetrics(m *observability.Metrics) EngineOption {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine over the given ports.
func NewEngine(provider ports.TreeProvider, store ports.SessionStore, renderer ports.Renderer, opts ...EngineOption) *Engine {
	e := &Engine{
		provider: provider,
		store:    store,
		renderer: renderer,
		metrics:  observability.NewNopMetrics(),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate runs one full submission: validate, transition to Loading, fetch
// the tree, then transition to Ready (or back to Idle on failure). The stored
// session is replaced atomically at each step; a concurrent submission against
// a loading session is rejected with domain.ErrGenerationInFlight.
func (e *Engine) Generate(ctx context.Context, sessionID, incident string, level int) (*domain.Session, error) {
	session, err := e.store.Load(ctx, sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		session = domain.NewSession(sessionID)
	} else if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	loading, err := domain.Begin(session, incident, level)
	if err != nil {
		return session, err
	}
	if err := e.store.Save(ctx, loading); err != nil {
		return nil, fmt.Errorf("save loading state: %w", err)
	}

	start := e.now()
	tree, err := e.provider.Fetch(ctx, incident, level)
	if err == nil {
		err = tree.Validate()
	}
	if err != nil {
		// Failure path: loading indicator cleared, chart hidden, export
		// disabled. The error is logged for diagnostics and surfaced to the
		// caller for its own alert.
		e.metrics.GenerationFailures.Inc()
		e.logger.Error("generation failed", "session_id", sessionID, "error", err)

		failed := domain.Fail(loading)
		if saveErr := e.store.Save(ctx, failed); saveErr != nil {
			e.logger.Error("failed to persist failure state", "session_id", sessionID, "error", saveErr)
		}
		return failed, fmt.Errorf("generate tree: %w", err)
	}

	ready := domain.Complete(loading, tree, e.now())
	if err := e.store.Save(ctx, ready); err != nil {
		return nil, fmt.Errorf("save ready state: %w", err)
	}

	elapsed := e.now().Sub(start)
	e.metrics.GenerationDuration.Observe(elapsed.Seconds())
	e.metrics.Generations.WithLabelValues(string(domain.Classify(incident)), strconv.Itoa(level)).Inc()
	e.logger.Info("generation complete",
		"session_id", sessionID,
		"category", domain.Classify(incident),
		"level", level,
		"nodes", len(tree),
		"elapsed", elapsed,
	)
	return ready, nil
}

// Session returns the stored session snapshot.
func (e *Engine) Session(ctx context.Context, id string) (*domain.Session, error) {
	return e.store.Load(ctx, id)
}

// Diagram renders the session's tree. It requires a successful prior
// generation; otherwise domain.ErrNoDiagram is returned.
func (e *Engine) Diagram(ctx context.Context, id string) (string, error) {
	session, err := e.store.Load(ctx, id)
	if err != nil {
		return "", err
	}
	if session.Status != domain.StatusReady {
		return "", domain.ErrNoDiagram
	}
	return e.renderer.Render(session.Nodes)
}

// Report builds the export payload for a session. Export before any
// successful generation is rejected with domain.ErrNoDiagram and counted.
func (e *Engine) Report(ctx context.Context, id string) (*domain.Report, error) {
	session, err := e.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	report, err := domain.NewReport(session)
	if err != nil {
		e.metrics.ExportRejections.Inc()
		return nil, err
	}
	e.metrics.Exports.Inc()
	return report, nil
}

// Render is a stateless convenience for one-shot callers (CLI, MCP): it
// renders a tree without touching the session store.
func (e *Engine) Render(tree domain.Tree) (string, error) {
	return e.renderer.Render(tree)
}

// Fetch exposes the provider for one-shot callers using the same contract as
// the stored-session flow.
func (e *Engine) Fetch(ctx context.Context, incident string, level int) (domain.Tree, error) {
	if incident == "" {
		return nil, domain.ErrEmptyIncident
	}
	return e.provider.Fetch(ctx, incident, level)
}
