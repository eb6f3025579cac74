package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GetBatchSummaryQueryHandler prices the batch an order belongs to.
//
// Unlike the row-level dispatch view, pricing is domain logic: the handler
// reconstructs full aggregates through the repository and hands them to the
// pricing engine rather than re-deriving the partial-fulfillment rule in SQL.
//
// Example:
//
//	handler := NewGetBatchSummaryQueryHandler(repo, engine)
//	query, _ := NewGetBatchSummaryQuery(orderID)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to price batch: %v", err)
//	    return err
//	}
//
//	for _, shop := range summary.Shops {
//	    fmt.Printf("%s: total %s (vat %s)\n", shop.ShopID, shop.Total, shop.VAT)
//	}
type GetBatchSummaryQueryHandler struct {
	ordersRepo ports.OrderRepository
	engine     services.PricingEngine
}

// NewGetBatchSummaryQueryHandler creates a handler for batch pricing queries.
func NewGetBatchSummaryQueryHandler(ordersRepo ports.OrderRepository, engine services.PricingEngine) GetBatchSummaryQueryHandler {
	return GetBatchSummaryQueryHandler{
		ordersRepo: ordersRepo,
		engine:     engine,
	}
}

// Handle loads the anchoring order and the rest of its worker's undelivered
// orders, then prices the batch per shop.
func (h GetBatchSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetBatchSummaryQuery,
) (GetBatchSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBatchSummaryQueryResponse{}, err
	}

	primary, err := h.ordersRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetBatchSummaryQueryResponse{}, err
	}

	workerOrders, err := h.ordersRepo.GetWorkerBatch(ctx, primary.WorkerID())
	if err != nil {
		return GetBatchSummaryQueryResponse{}, err
	}

	combined := make([]*order.Order, 0, len(workerOrders))
	for _, aggregate := range workerOrders {
		if aggregate.IsEqual(primary) {
			continue
		}
		combined = append(combined, aggregate)
	}

	b, err := batch.NewBatch(primary, combined)
	if err != nil {
		return GetBatchSummaryQueryResponse{}, err
	}

	summaries, err := h.engine.ComputeShopSummaries(b)
	if err != nil {
		return GetBatchSummaryQueryResponse{}, err
	}

	response := GetBatchSummaryQueryResponse{
		Shops: make([]ShopSummaryResponse, 0, len(summaries)),
	}
	for _, shop := range summaries {
		response.Shops = append(response.Shops, ShopSummaryResponse{
			ShopID:   shop.ShopID,
			Subtotal: shop.Summary.Subtotal.String(),
			VAT:      shop.Summary.VAT.String(),
			Discount: shop.Summary.Discount.String(),
			Refund:   shop.Summary.Refund.String(),
			Total:    shop.Summary.Total.String(),
		})
	}

	return response, nil
}
