// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
)

// CenterRepository defines the persistence contract for center aggregates.
type CenterRepository interface {
	// Add persists a new center and binds the identity assigned by storage.
	// Returns center.ErrCoordinatesTaken if another center sits at the same position.
	Add(ctx context.Context, aggregate *center.Center) error

	// Update persists changes to an existing center.
	// Returns errs.ErrObjectNotFound if the center does not exist.
	Update(ctx context.Context, aggregate *center.Center) error

	// Get retrieves a center by identity.
	// Returns errs.ErrObjectNotFound if the center does not exist.
	Get(ctx context.Context, id kernel.ID) (*center.Center, error)

	// GetAll retrieves every center ordered by identity.
	GetAll(ctx context.Context) ([]*center.Center, error)

	// GetAllAvailable retrieves the centers in AVAILABLE status ordered by identity.
	// Used as the center snapshot of a batch assignment.
	GetAllAvailable(ctx context.Context) ([]*center.Center, error)

	// Delete removes a center.
	// Returns errs.ErrObjectNotFound if the center does not exist.
	Delete(ctx context.Context, id kernel.ID) error

	// ExistsAtCoordinates reports whether any center occupies exactly the given position.
	ExistsAtCoordinates(ctx context.Context, coordinates kernel.Coordinates) (bool, error)
}
