// Package ports defines repository interfaces for the food delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for customer order aggregates.
// Orders are append-only: they are placed once and never mutated afterwards,
// so the contract has no Update method.
type OrderRepository interface {
	// Add persists a new order and attaches the store-generated id to the
	// aggregate. The order must be valid and must not carry an id yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// LookupCustomerName resolves the customer display name for an order.
	// Returns errs.ObjectNotFoundError when the order does not exist; callers
	// decide whether a miss blocks the operation or degrades to a sentinel.
	LookupCustomerName(ctx context.Context, id kernel.OrderID) (string, error)
}
