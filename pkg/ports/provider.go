package ports

import (
	"context"

	"github.com/aretw0/ishikawa/pkg/domain"
)

// TreeProvider fetches the cause-effect tree for an incident at a given
// analysis level. The call blocks until the tree is available, the context is
// canceled, or the provider fails; this is the seam where a real analysis
// backend would replace the bundled mock.
type TreeProvider interface {
	Fetch(ctx context.Context, incident string, level int) (domain.Tree, error)
}

// Renderer lays out a validated tree and produces a self-contained diagram
// document (an SVG image in the default implementation).
type Renderer interface {
	Render(tree domain.Tree) (string, error)
}
