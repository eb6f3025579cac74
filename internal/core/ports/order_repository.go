// Package ports defines the contracts between the application core and
// infrastructure. These interfaces enable dependency inversion and
// testability: handlers depend on ports, adapters implement them.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and grouping attributes.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, items included.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and its items.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and reconciliation state.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetWorkerBatch retrieves all undelivered orders assigned to a worker:
	// the material of a batch. Ordering follows creation time.
	GetWorkerBatch(ctx context.Context, workerID kernel.UUID) ([]*order.Order, error)

	// GetByCustomerKey retrieves all undelivered orders of one worker that
	// share a customer key. Used for group delivery confirmation.
	GetByCustomerKey(ctx context.Context, workerID kernel.UUID, customerKey string) ([]*order.Order, error)

	// GetAllUndelivered retrieves every order not yet in the Delivered
	// status, across all workers. Used by the overdue classification job.
	GetAllUndelivered(ctx context.Context) ([]*order.Order, error)
}
