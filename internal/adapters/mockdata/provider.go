// Package mockdata implements ports.TreeProvider with hand-authored fixtures
// and a procedural synthesizer. It emulates a remote analysis backend behind
// the same asynchronous contract a real one would use, including an artificial
// fixed latency.
package mockdata

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/ishikawa/pkg/domain"
)

// DefaultLatency is the simulated remote-call delay.
const DefaultLatency = 1500 * time.Millisecond

// Provider serves cause-effect trees from the fixture catalog, falling back
// to the synthesizer on a catalog miss. Safe for concurrent use: the catalog
// is read-only after construction and every result is a fresh copy.
type Provider struct {
	catalog map[string]domain.Tree
	latency time.Duration
	logger  *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithLatency overrides the simulated remote-call delay. Zero disables it.
func WithLatency(d time.Duration) Option {
	return func(p *Provider) {
		p.latency = d
	}
}

// WithLogger injects a logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = l
	}
}

// NewProvider creates a mock provider with the built-in catalog.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		catalog: Catalog(),
		latency: DefaultLatency,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fetch classifies the incident, looks up the fixture catalog and synthesizes
// a tree on a miss. It blocks for the configured latency first, honoring
// context cancellation, so callers exercise the same suspension point a real
// backend call would have. Level is deliberately not range-checked here:
// out-of-catalog levels fall through to the synthesizer.
func (p *Provider) Fetch(ctx context.Context, incident string, level int) (domain.Tree, error) {
	if p.latency > 0 {
		select {
		case <-time.After(p.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	cat := domain.Classify(incident)
	key := domain.FixtureKey(cat, level)

	if fixture, ok := p.catalog[key]; ok {
		p.logger.Debug("serving fixture", "key", key, "nodes", len(fixture))
		out := make(domain.Tree, len(fixture))
		copy(out, fixture)
		return out, nil
	}

	tree := Synthesize(incident, level)
	p.logger.Debug("synthesized tree", "category", cat, "level", level, "nodes", len(tree))
	return tree, nil
}
