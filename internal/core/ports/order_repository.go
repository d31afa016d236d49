package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and binds the identity assigned by storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	// Returns errs.ErrObjectNotFound if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identity.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAllPending retrieves every order in PENDING status, oldest first.
	// Used as the order snapshot of a batch assignment.
	GetAllPending(ctx context.Context) ([]*order.Order, error)
}
