package mockdata_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aretw0/ishikawa/internal/adapters/mockdata"
	"github.com/aretw0/ishikawa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider() *mockdata.Provider {
	return mockdata.NewProvider(mockdata.WithLatency(0))
}

func TestFetchFixtures(t *testing.T) {
	wantCounts := map[int]int{1: 3, 2: 7, 3: 11}
	incidents := map[domain.Category]string{
		domain.CategoryFire: "Fire in warehouse",
		domain.CategorySlip: "Worker slipped near dock",
	}

	p := newTestProvider()
	ctx := context.Background()

	for cat, incident := range incidents {
		for level, count := range wantCounts {
			t.Run(fmt.Sprintf("%s-%d", cat, level), func(t *testing.T) {
				tree, err := p.Fetch(ctx, incident, level)
				require.NoError(t, err)
				require.NoError(t, tree.Validate())
				assert.Len(t, tree, count)
				assert.Equal(t, mockdata.Catalog()[domain.FixtureKey(cat, level)], tree,
					"catalog hit must return the fixture verbatim")
			})
		}
	}
}

func TestFetchFireLevel2EndToEnd(t *testing.T) {
	p := newTestProvider()

	tree, err := p.Fetch(context.Background(), "Fire in warehouse", 2)
	require.NoError(t, err)
	require.Len(t, tree, 7)

	root := tree.Root()
	assert.Equal(t, "Fire Incident", root.Name)

	causes := 0
	subCauses := 0
	effects := 0
	for _, c := range tree.Children(root.Key) {
		if len(tree.Children(c.Key)) > 0 {
			causes++
			subCauses += len(tree.Children(c.Key))
		} else {
			effects++
		}
	}
	assert.Equal(t, 2, causes)
	assert.Equal(t, 2, subCauses)
	assert.Equal(t, 2, effects)
}

func TestFetchFallsBackToSynthesizer(t *testing.T) {
	p := newTestProvider()
	ctx := context.Background()

	t.Run("GenericIncident", func(t *testing.T) {
		tree, err := p.Fetch(ctx, "Forklift collision", 2)
		require.NoError(t, err)
		assert.Equal(t, mockdata.Synthesize("Forklift collision", 2), tree)
	})

	t.Run("KnownCategoryUndefinedLevel", func(t *testing.T) {
		tree, err := p.Fetch(ctx, "Fire in warehouse", 5)
		require.NoError(t, err)
		// fire-5 has no fixture; the synthesizer takes over (clamped to 3).
		assert.Equal(t, mockdata.Synthesize("Fire in warehouse", 5), tree)
	})
}

func TestFetchResultsAreIsolated(t *testing.T) {
	p := newTestProvider()
	ctx := context.Background()

	a, err := p.Fetch(ctx, "Fire in warehouse", 1)
	require.NoError(t, err)
	a[0].Name = "mutated"

	b, err := p.Fetch(ctx, "Fire in warehouse", 1)
	require.NoError(t, err)
	assert.Equal(t, "Fire Incident", b[0].Name, "fixtures must not leak by reference")
}

func TestFetchHonorsCancellation(t *testing.T) {
	p := mockdata.NewProvider(mockdata.WithLatency(5 * time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Fetch(ctx, "Fire in warehouse", 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCatalogIntegrity(t *testing.T) {
	for key, tree := range mockdata.Catalog() {
		assert.NoError(t, tree.Validate(), "fixture %s", key)
	}
}
