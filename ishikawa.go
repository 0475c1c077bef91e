package ishikawa

import (
	"context"
	_ "embed"
	"log/slog"

	"github.com/aretw0/ishikawa/internal/adapters/memory"
	"github.com/aretw0/ishikawa/internal/adapters/mockdata"
	"github.com/aretw0/ishikawa/internal/presentation/svg"
	"github.com/aretw0/ishikawa/internal/runtime"
	"github.com/aretw0/ishikawa/pkg/domain"
	"github.com/aretw0/ishikawa/pkg/ports"
)

// Version is the library version, embedded at build time.
//
//go:embed version.txt
var Version string

// Engine is the high-level entry point for the ishikawa library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime  *runtime.Engine
	provider ports.TreeProvider
	store    ports.SessionStore
	renderer ports.Renderer
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithProvider injects a custom tree provider, bypassing the default mock catalog.
func WithProvider(p ports.TreeProvider) Option {
	return func(e *Engine) {
		e.provider = p
	}
}

// WithStore injects a custom session store. The default keeps sessions in memory.
func WithStore(s ports.SessionStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithRenderer injects a custom diagram renderer.
func WithRenderer(r ports.Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new ishikawa Engine. By default it analyzes incidents
// against the built-in mock catalog, keeps sessions in memory and renders
// diagrams as SVG.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.provider == nil {
		eng.provider = mockdata.NewProvider()
	}
	if eng.store == nil {
		eng.store = memory.NewStore()
	}
	if eng.renderer == nil {
		eng.renderer = svg.NewRenderer()
	}

	runtimeOpts := []runtime.EngineOption{}
	if eng.logger != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithLogger(eng.logger))
	}
	eng.runtime = runtime.NewEngine(eng.provider, eng.store, eng.renderer, runtimeOpts...)
	return eng
}

// Generate runs one full submission against the given session: validate the
// inputs, fetch the cause-effect tree and store the ready result.
func (e *Engine) Generate(ctx context.Context, sessionID, incident string, level int) (*domain.Session, error) {
	return e.runtime.Generate(ctx, sessionID, incident, level)
}

// Session returns the stored session snapshot.
func (e *Engine) Session(ctx context.Context, id string) (*domain.Session, error) {
	return e.runtime.Session(ctx, id)
}

// Diagram renders the session's tree as an SVG document.
func (e *Engine) Diagram(ctx context.Context, id string) (string, error) {
	return e.runtime.Diagram(ctx, id)
}

// Report builds the export payload for a ready session.
func (e *Engine) Report(ctx context.Context, id string) (*domain.Report, error) {
	return e.runtime.Report(ctx, id)
}

// Fetch analyzes an incident without touching any session state.
func (e *Engine) Fetch(ctx context.Context, incident string, level int) (domain.Tree, error) {
	return e.runtime.Fetch(ctx, incident, level)
}

// Render renders an already fetched tree without touching any session state.
func (e *Engine) Render(tree domain.Tree) (string, error) {
	return e.runtime.Render(tree)
}
