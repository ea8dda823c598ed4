// Package ports defines the contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid. Concurrent
	// updates to the same order are not serialized; the last write wins.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// regardless of owner. Used by administrative operations.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByUser retrieves an order scoped to its owner. An order that does
	// not exist and an order owned by a different user produce the same
	// not-found error, so callers cannot probe for other users' orders.
	GetByUser(ctx context.Context, id kernel.UUID, userID kernel.UUID) (*order.Order, error)
}
