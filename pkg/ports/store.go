package ports

import (
	"context"

	"github.com/aretw0/wilayah/pkg/domain"
)

// SelectionStore defines the interface for persisting a Selection per session.
// Browsers keep their selection in the URL; hosts without one (CLI, MCP) use a store.
type SelectionStore interface {
	// Save persists the selection for a given session ID.
	Save(ctx context.Context, sessionID string, sel domain.Selection) error

	// Load retrieves the selection for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (domain.Selection, error)

	// Delete removes the selection for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of the stored sessions.
	List(ctx context.Context) ([]string, error)
}
