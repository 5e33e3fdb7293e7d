// Package ports defines the interfaces between the application services and
// their infrastructure.
package ports

import (
	"context"

	"knowcore/domain/knowledge"
)

// KnowledgeRepository stores knowledge units. Implementations return copies,
// never live references to internal state.
type KnowledgeRepository interface {
	// Save inserts or replaces a unit by its ID.
	Save(ctx context.Context, unit *knowledge.Unit) error

	// FindByID returns the unit with the given ID, or a not-found error.
	FindByID(ctx context.Context, id string) (*knowledge.Unit, error)

	// FindAll returns every stored unit.
	FindAll(ctx context.Context) ([]*knowledge.Unit, error)

	// Delete removes the unit with the given ID, or returns a not-found
	// error if it was never stored.
	Delete(ctx context.Context, id string) error
}
