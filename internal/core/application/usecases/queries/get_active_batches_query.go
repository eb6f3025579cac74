// Package queries contains read-only operations for dispatch and batch views.
// Implements the Query side of the CQRS architecture: handlers read projection
// rows directly and never mutate aggregates.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveBatchesQueryIsNotConstructed = errors.New(
	"GetActiveBatchesQuery must be created via NewGetActiveBatchesQuery constructor",
)

// GetActiveBatchesQuery retrieves every undelivered order with its urgency
// bucket, for the dispatch view. Rows come back deadline-first so the most
// pressing work is at the top.
//
// Example:
//
//	query := NewGetActiveBatchesQuery()
//	handler := NewGetActiveBatchesQueryHandler(db)
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active batches: %w", err)
//	}
//
//	for _, row := range rows {
//	    fmt.Printf("%s %s %s\n", row.PublicOrderNumber, row.Status, row.Urgency)
//	}
type GetActiveBatchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveBatchesQuery creates a query to retrieve active orders.
// This is a parameterless query that fetches all non-delivered orders.
func NewGetActiveBatchesQuery() GetActiveBatchesQuery {
	return GetActiveBatchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveBatchesQueryIsNotConstructed if validation fails.
func (q GetActiveBatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveBatchesQueryIsNotConstructed)
}

// GetActiveBatchesQueryResponse represents one active order in the dispatch
// view: its grouping keys, lifecycle status, urgency classification, and item
// reconciliation progress.
type GetActiveBatchesQueryResponse struct {
	ID                kernel.UUID
	PublicOrderNumber string
	ShopID            string
	CustomerKey       string
	WorkerID          kernel.UUID
	Status            order.Status
	DeliveryDeadline  *time.Time
	Urgency           services.UrgencyBucket

	// OverdueBy renders how far past the deadline the order is,
	// e.g. "1h 12m". Empty unless the bucket is late.
	OverdueBy string

	UnitsRequested int
	UnitsFound     int
}
