package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetBatchSummaryQueryIsNotConstructed = errors.New(
	"GetBatchSummaryQuery must be created via NewGetBatchSummaryQuery constructor",
)

// GetBatchSummaryQuery retrieves the pricing summary of the batch an order
// belongs to: the order itself plus every other undelivered order carried by
// the same worker, totalled per shop.
//
// Example:
//
//	query, err := NewGetBatchSummaryQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid summary request: %w", err)
//	}
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to price batch: %w", err)
//	}
type GetBatchSummaryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBatchSummaryQuery creates a query to price an order's batch.
// Validates that the order ID is valid.
func NewGetBatchSummaryQuery(orderID kernel.UUID) (GetBatchSummaryQuery, error) {
	query := GetBatchSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetBatchSummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBatchSummaryQueryIsNotConstructed if validation fails.
func (q GetBatchSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchSummaryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order anchoring the batch.
func (q GetBatchSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetBatchSummaryQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// ShopSummaryResponse carries the priced totals of one shop's share of the
// batch. Money values are rendered as decimal strings.
type ShopSummaryResponse struct {
	ShopID   string
	Subtotal string
	VAT      string
	Discount string
	Refund   string
	Total    string
}

// GetBatchSummaryQueryResponse represents the priced batch, one entry per
// shop in first-seen order. Single-shop batches yield exactly one entry.
type GetBatchSummaryQueryResponse struct {
	Shops []ShopSummaryResponse
}
