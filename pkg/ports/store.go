package ports

import (
	"context"

	"github.com/afrisecure/ussd/pkg/domain"
)

// SessionStore defines the interface for persisting session snapshots.
// A USSD gateway callback is stateless per request, so the session between
// two callbacks lives here.
type SessionStore interface {
	// Save persists the session snapshot under its session ID.
	Save(ctx context.Context, sessionID string, s *domain.Session) error

	// Load retrieves the snapshot for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Session, error)

	// Delete removes the snapshot for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all stored sessions.
	List(ctx context.Context) ([]string, error)
}
