package ports

import (
	"context"

	"github.com/aretw0/ishikawa/pkg/domain"
)

// SessionStore defines the interface for persisting analysis session state.
// Sessions are transient UI state, not incident records: a store may expire
// them freely.
type SessionStore interface {
	// Save persists the session snapshot under its ID.
	Save(ctx context.Context, session *domain.Session) error

	// Load retrieves the session for a given ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes the session for a given ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of the currently stored sessions.
	List(ctx context.Context) ([]string, error)
}
