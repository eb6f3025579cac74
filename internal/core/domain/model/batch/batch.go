package batch

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
)

// UnknownIdentity is the fallback segment used in customer keys when the
// customer id or phone is absent. Two orders missing both fields therefore
// share a key; see CustomerKeyOf.
const UnknownIdentity = "unknown"

var (
	// ErrBatchIsNotConstructed is returned when a Batch instance was not
	// created through the NewBatch factory method.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")

	// ErrMixedWorkers is returned when the orders combined into a batch are
	// not all assigned to the same delivery worker.
	ErrMixedWorkers = errors.New("all orders in a batch must share one delivery worker")

	// ErrGroupNotReady is the sentinel for GroupNotReadyError.
	ErrGroupNotReady = errors.New("customer group is not ready for delivery")
)

// GroupNotReadyError indicates that an atomic group delivery was requested
// while at least one order in the customer group is not yet en route or lacks
// a proof-of-delivery reference. No order in the group is mutated.
type GroupNotReadyError struct {
	CustomerKey string
	OrderID     string
}

// NewGroupNotReadyError creates a GroupNotReadyError naming the first order
// that blocked the group.
func NewGroupNotReadyError(customerKey string, orderID string) *GroupNotReadyError {
	return &GroupNotReadyError{CustomerKey: customerKey, OrderID: orderID}
}

func (e *GroupNotReadyError) Error() string {
	return fmt.Sprintf("%s: group %s blocked by order %s", ErrGroupNotReady, e.CustomerKey, e.OrderID)
}

func (e *GroupNotReadyError) Unwrap() error {
	return ErrGroupNotReady
}

// CustomerKeyOf derives the grouping key for an order's customer identity:
// "<customerId>_<customerPhone>", each segment defaulting to "unknown" when
// absent.
//
// This is deliberately coarse: two orders missing both identifiers collapse
// into one group. The behavior matches how active batches have always been
// grouped and is kept rather than silently "fixed".
func CustomerKeyOf(o *order.Order) string {
	return CustomerKey(o.CustomerID(), o.CustomerPhone())
}

// CustomerKey builds the customer grouping key from raw identity fields.
func CustomerKey(customerID string, customerPhone string) string {
	if customerID == "" {
		customerID = UnknownIdentity
	}
	if customerPhone == "" {
		customerPhone = UnknownIdentity
	}
	return customerID + "_" + customerPhone
}

// Batch is a delivery worker's unit of work: one primary order plus zero or
// more combined orders delivered in the same trip (same customer from several
// shops, or one shop for several customers).
//
// Batch is a derived view over orders, never persisted on its own; the primary
// order's record carries the combined-order references. Every order in a batch
// must be assigned to the same delivery worker.
type Batch struct {
	primary  *order.Order
	combined []*order.Order

	isConstructed bool
}

// NewBatch creates a Batch from a primary order and its combined orders,
// enforcing the single-worker invariant.
func NewBatch(primary *order.Order, combined []*order.Order) (*Batch, error) {
	if err := primary.Validate(); err != nil {
		return nil, err
	}

	for _, o := range combined {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if !o.WorkerID().IsEqual(primary.WorkerID()) {
			return nil, ErrMixedWorkers
		}
	}

	return &Batch{
		primary:       primary,
		combined:      combined,
		isConstructed: true,
	}, nil
}

// Validate ensures the Batch instance was properly constructed through NewBatch.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// Primary returns the batch's primary order.
func (b *Batch) Primary() *order.Order {
	return b.primary
}

// Combined returns the combined orders, excluding the primary.
func (b *Batch) Combined() []*order.Order {
	return b.combined
}

// Orders returns all orders in the batch, primary first, preserving the
// combined-order ordering.
func (b *Batch) Orders() []*order.Order {
	orders := make([]*order.Order, 0, 1+len(b.combined))
	orders = append(orders, b.primary)
	orders = append(orders, b.combined...)
	return orders
}

// Items returns the items of every order in the batch, in order traversal
// order. Used by shop grouping.
func (b *Batch) Items() []*order.OrderItem {
	var items []*order.OrderItem
	for _, o := range b.Orders() {
		items = append(items, o.Items()...)
	}
	return items
}
