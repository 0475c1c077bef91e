package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/ishikawa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSessionStoreContract runs a suite of tests verifying that a SessionStore
// implementation adheres to the interface contract. Adapter test packages call
// this against their concrete store.
func RunSessionStoreContract(t *testing.T, store SessionStore) {
	ctx := context.Background()
	id := "contract-session-" + time.Now().Format("20060102150405")

	tree := domain.Tree{
		{Key: 1, Name: "Incident"},
		{Key: 2, Name: "Cause", Parent: 1},
	}

	t.Run("Save and Load", func(t *testing.T) {
		session := domain.NewSession(id)
		session.Incident = "Fire in warehouse"
		session.Level = 2
		session = domain.Complete(session, tree, time.Now().UTC())

		err := store.Save(ctx, session)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, session.Incident, loaded.Incident)
		assert.Equal(t, session.Level, loaded.Level)
		assert.Equal(t, domain.StatusReady, loaded.Status)
		assert.Equal(t, tree, loaded.Nodes)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Load Isolation", func(t *testing.T) {
		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		loaded.Nodes[0].Name = "mutated"

		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Incident", again.Nodes[0].Name, "callers must not mutate stored state by reference")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.NewSession(id)))

		require.NoError(t, store.Delete(ctx, id), "Delete should not return error")

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		a := domain.NewSession(id + "-a")
		b := domain.NewSession(id + "-b")
		require.NoError(t, store.Save(ctx, a))
		require.NoError(t, store.Save(ctx, b))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, a.ID)
		assert.Contains(t, ids, b.ID)

		require.NoError(t, store.Delete(ctx, a.ID))
		require.NoError(t, store.Delete(ctx, b.ID))
	})
}
