package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// CreditKind names the fee a wallet credit settles.
type CreditKind string

const (
	// CreditServiceFee is the per-order service fee credit.
	CreditServiceFee CreditKind = "service_fee"

	// CreditDeliveryFee is the per-order delivery fee credit.
	CreditDeliveryFee CreditKind = "delivery_fee"
)

// CreditEvent describes one wallet credit owed to a worker for an order.
type CreditEvent struct {
	OrderID  kernel.UUID
	WorkerID kernel.UUID
	Kind     CreditKind
	Amount   kernel.Money
}

// WalletGateway emits worker wallet credits. Emission is fire-and-forget:
// the order transition that produced the credit is already committed, and
// a failed emission is retried by the wallet collaborator, never rolled
// back into order state.
type WalletGateway interface {
	Credit(ctx context.Context, events []CreditEvent)
}
