package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The persistence collaborator is the single source of truth; it also
// enforces identifier uniqueness.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an ObjectNotFoundError if the order no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Lookup is case-insensitive; identifiers are stored canonically.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Remove deletes the order entirely. Deleting a missing order returns an
	// ObjectNotFoundError rather than silently succeeding, so callers can
	// distinguish "already gone" from "gone because I just deleted it".
	Remove(ctx context.Context, id kernel.OrderID) error
}
