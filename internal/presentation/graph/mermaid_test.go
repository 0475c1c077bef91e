package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/ishikawa/internal/adapters/mockdata"
	"github.com/aretw0/ishikawa/internal/presentation/graph"
	"github.com/aretw0/ishikawa/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	tree := mockdata.Synthesize("Forklift collision", 2)
	out := graph.GenerateMermaid(tree)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, "n1((\"Forklift collision\"))", "root drawn as circle")
	assert.Contains(t, out, "n1 --> n2")
	assert.Contains(t, out, "n2 --> n102")
	assert.Contains(t, out, "n102[/\"Sub-cause 1.1\"/]", "leaf drawn as parallelogram")
	assert.Contains(t, out, "class n1 incident;")

	// One edge per non-root node.
	assert.Equal(t, len(tree)-1, strings.Count(out, "-->"))
}

func TestGenerateMermaidEscapesQuotes(t *testing.T) {
	tree := domain.Tree{{Key: 1, Name: `the "big" one`}}
	out := graph.GenerateMermaid(tree)
	assert.Contains(t, out, "the 'big' one")
	assert.NotContains(t, out, `the "big" one`)
}
