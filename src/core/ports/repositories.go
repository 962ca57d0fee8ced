// Package ports defines the interfaces connecting the core to
// infrastructure. Implementations live under src/infra; the core never
// imports them.
package ports

import (
	"context"

	"github.com/google/uuid"

	"beerfactory/src/core/domain"
)

// BeerRepository persists Beer entities.
type BeerRepository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error

	// FindByID returns the beer with the given id, or a not-found error.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Beer, error)

	// Save stores a new beer, assigning id, version 1, and timestamps.
	// It returns the stored entity.
	Save(ctx context.Context, beer *domain.Beer) (*domain.Beer, error)

	// Update overwrites the mutable fields of the beer with the given id,
	// bumping its version and last-modified timestamp. Returns a
	// not-found error when no such beer exists.
	Update(ctx context.Context, id uuid.UUID, beer *domain.Beer) error

	// Delete removes the beer with the given id, or returns a not-found
	// error.
	Delete(ctx context.Context, id uuid.UUID) error
}
