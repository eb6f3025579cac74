package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveBatchesQueryHandler retrieves undelivered orders from the database
// and classifies each row's urgency against the wall clock at read time.
// Classification is never cached: the same row can move from okay to urgent
// between two reads without any write happening.
//
// Example:
//
//	handler := NewGetActiveBatchesQueryHandler(db)
//	query := NewGetActiveBatchesQuery()
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get active batches: %v", err)
//	    return err
//	}
type GetActiveBatchesQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGetActiveBatchesQueryHandler creates a handler for the dispatch view.
// Requires a GORM database connection for query execution.
func NewGetActiveBatchesQueryHandler(db *gorm.DB) GetActiveBatchesQueryHandler {
	return GetActiveBatchesQueryHandler{db: db, now: time.Now}
}

// NewGetActiveBatchesQueryHandlerWithClock creates the handler with an
// injected clock for deterministic urgency classification in tests.
func NewGetActiveBatchesQueryHandlerWithClock(db *gorm.DB, now func() time.Time) GetActiveBatchesQueryHandler {
	return GetActiveBatchesQueryHandler{db: db, now: now}
}

// Handle executes the query to retrieve all undelivered orders.
// Results are sorted deadline-first (orders without a deadline last), then
// by creation time, for consistent dispatch ordering.
func (h GetActiveBatchesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveBatchesQuery,
) ([]GetActiveBatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetActiveBatchesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.public_order_number,
			o.shop_id,
			o.customer_id,
			o.customer_phone,
			o.worker_id,
			o.status,
			o.created_at,
			o.delivery_deadline,
			COALESCE(SUM(i.quantity), 0),
			COALESCE(SUM(CASE WHEN i.found THEN i.found_quantity ELSE 0 END), 0)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status != ?
		GROUP BY o.id
		ORDER BY o.delivery_deadline ASC NULLS LAST, o.created_at ASC
	`, order.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := h.now()

	for rows.Next() {
		var (
			id, workerID               uuid.UUID
			publicOrderNumber, shopID  string
			customerID, customerPhone  string
			status                     int
			createdAt                  time.Time
			deliveryDeadline           *time.Time
			unitsRequested, unitsFound int64
		)

		err = rows.Scan(
			&id,
			&publicOrderNumber,
			&shopID,
			&customerID,
			&customerPhone,
			&workerID,
			&status,
			&createdAt,
			&deliveryDeadline,
			&unitsRequested,
			&unitsFound,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		worker, idErr := kernel.UUIDFromBytes(workerID[:])
		if idErr != nil {
			return nil, idErr
		}

		bucket := services.ClassifyAt(now, order.Status(status), createdAt, deliveryDeadline)

		overdueBy := ""
		if bucket == services.BucketLate && deliveryDeadline != nil {
			overdueBy = services.FormatOverdue(now.Sub(*deliveryDeadline))
		}

		responses = append(responses, GetActiveBatchesQueryResponse{
			ID:                orderID,
			PublicOrderNumber: publicOrderNumber,
			ShopID:            shopID,
			CustomerKey:       batch.CustomerKey(customerID, customerPhone),
			WorkerID:          worker,
			Status:            order.Status(status),
			DeliveryDeadline:  deliveryDeadline,
			Urgency:           bucket,
			OverdueBy:         overdueBy,
			UnitsRequested:    int(unitsRequested),
			UnitsFound:        int(unitsFound),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
