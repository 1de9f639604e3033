package ports

import (
	"context"

	"github.com/aretw0/wilayah/pkg/domain"
)

// SelectionEngine defines the interface used by adapters (HTTP, MCP, CLI) to drive the cascade.
// Selections are passed in and returned by value: the engine keeps no per-user state.
type SelectionEngine interface {
	// Apply runs one selection operation and returns the new Selection.
	Apply(ctx context.Context, sel domain.Selection, action domain.Action) (domain.Selection, error)

	// View derives the option lists and resolved records for a Selection.
	// Returns domain.ErrDatasetUnavailable if no dataset has been loaded.
	View(ctx context.Context, sel domain.Selection) (domain.View, error)

	// Dataset returns the currently loaded dataset, or nil.
	Dataset() *domain.Dataset
}
