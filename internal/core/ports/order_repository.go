package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Commands write through it inside a unit of work; list-style reads live
// in the query handlers, which go to the database directly.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus applies the order's current status to storage as a
	// single atomic column write. Nothing else about the row changes.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error
}
