package mockdata_test

import (
	"fmt"
	"testing"

	"github.com/aretw0/ishikawa/internal/adapters/mockdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeShape(t *testing.T) {
	wantTotals := map[int]int{1: 5, 2: 9, 3: 13}

	for level, total := range wantTotals {
		t.Run(fmt.Sprintf("Level%d", level), func(t *testing.T) {
			tree := mockdata.Synthesize("Forklift collision", level)
			require.NoError(t, tree.Validate())
			assert.Len(t, tree, total)

			root := tree.Root()
			assert.Equal(t, 1, root.Key)
			assert.Equal(t, "Forklift collision", root.Name)

			children := tree.Children(root.Key)
			require.Len(t, children, 4, "always 2 causes + 2 effects off the root")
			assert.Equal(t, "Human Factor", children[0].Name)
			assert.Equal(t, "Equipment Issue", children[1].Name)
			assert.Equal(t, "Injury", children[2].Name)
			assert.Equal(t, "Property Damage", children[3].Name)
		})
	}
}

func TestSynthesizeDeepLevels(t *testing.T) {
	tree := mockdata.Synthesize("Chemical spill", 3)
	require.NoError(t, tree.Validate())

	// First cause chain: 2 -> 102 -> 202.
	sub, ok := tree.Lookup(102)
	require.True(t, ok)
	assert.Equal(t, "Sub-cause 1.1", sub.Name)
	assert.Equal(t, 2, sub.Parent)

	subsub, ok := tree.Lookup(202)
	require.True(t, ok)
	assert.Equal(t, "Sub-cause 1.2", subsub.Name)
	assert.Equal(t, 102, subsub.Parent)

	// First effect chain: 4 -> 304 -> 404.
	secondary, ok := tree.Lookup(304)
	require.True(t, ok)
	assert.Equal(t, "Secondary Effect 1.1", secondary.Name)
	assert.Equal(t, 4, secondary.Parent)

	longterm, ok := tree.Lookup(404)
	require.True(t, ok)
	assert.Equal(t, "Long-term Effect 1.1", longterm.Name)
	assert.Equal(t, 304, longterm.Parent)

	assert.Equal(t, 4, tree.Depth())
}

func TestSynthesizeIdempotent(t *testing.T) {
	a := mockdata.Synthesize("Forklift collision", 2)
	b := mockdata.Synthesize("Forklift collision", 2)
	assert.Equal(t, a, b, "same inputs must yield structurally identical output")
}

func TestSynthesizeClampsLevel(t *testing.T) {
	assert.Equal(t, mockdata.Synthesize("x", 1), mockdata.Synthesize("x", 0))
	assert.Equal(t, mockdata.Synthesize("x", 1), mockdata.Synthesize("x", -7))
	assert.Equal(t, mockdata.Synthesize("x", 3), mockdata.Synthesize("x", 4))
	assert.Equal(t, mockdata.Synthesize("x", 3), mockdata.Synthesize("x", 99))
}

func TestSynthesizeKeysNeverCollide(t *testing.T) {
	for level := 1; level <= 3; level++ {
		tree := mockdata.Synthesize("anything", level)
		seen := map[int]bool{}
		for _, n := range tree {
			assert.False(t, seen[n.Key], "level %d: key %d duplicated", level, n.Key)
			seen[n.Key] = true
		}
	}
}

func TestSynthesizeEmptyIncidentNameRejectedByValidate(t *testing.T) {
	// The synthesizer itself does not validate non-emptiness; that is the
	// submission layer's job. A tree built from empty text fails validation.
	tree := mockdata.Synthesize("", 1)
	assert.Error(t, tree.Validate())
}
