package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a single shop-scoped purchase request being fulfilled by a
// delivery worker. It is the aggregate root that owns the canonical status and
// the item reconciliation ledger; every mutation goes through its methods so
// the lifecycle and item invariants always hold together.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and an assigned delivery worker
//   - Status transitions follow the lifecycle table (see Status)
//   - Items are mutable only while the status is Shopping
//   - Discount is never negative
//   - The wallet credit for the worker's fees fires at most once
//   - Delivered is terminal: no mutation of any kind is permitted after it
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// publicOrderNumber is the customer-facing order reference
	publicOrderNumber string

	// shopID identifies the shop the order is scoped to; may be empty for
	// catalog records without a shop reference
	shopID string

	// customerID and customerPhone identify the customer; either may be
	// empty, which the customer grouping key tolerates
	customerID    string
	customerPhone string

	// workerID is the delivery worker assigned to the order
	workerID kernel.UUID

	// orderType classifies sourcing and decides whether shopping applies
	orderType OrderType

	// shoppingRequired is derived from the order type at construction
	shoppingRequired bool

	// status is the current state in the fulfillment lifecycle
	status Status

	// createdAt is when the order was placed
	createdAt time.Time

	// deliveryDeadline is the promised delivery time, if any
	deliveryDeadline *time.Time

	// serviceFee and deliveryFee are credited to the worker's wallet on
	// departure; they are informational line items for pricing
	serviceFee  kernel.Money
	deliveryFee kernel.Money

	// discount is subtracted from the items total (floored at zero)
	discount kernel.Money

	// items is the reconciliation ledger for the order
	items []*OrderItem

	// proofOfDeliveryRef is the externally supplied artifact reference
	// gating delivery confirmation; empty until attached
	proofOfDeliveryRef string

	// walletCredited records that the fee credit event was already
	// emitted, so a retried departure never double-fires it
	walletCredited bool

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrderParams carries the attributes required to create an Order.
// Grouping the parameters in a struct keeps the constructor readable for an
// aggregate this wide.
type NewOrderParams struct {
	ID                kernel.UUID
	PublicOrderNumber string
	ShopID            string
	CustomerID        string
	CustomerPhone     string
	WorkerID          kernel.UUID
	Type              OrderType

	// ReelFromRestaurant marks a reel order whose goods are pre-made by a
	// restaurant or user-owned kitchen; such orders skip the shopping phase.
	ReelFromRestaurant bool

	CreatedAt        time.Time
	DeliveryDeadline *time.Time
	ServiceFee       kernel.Money
	DeliveryFee      kernel.Money
	Discount         kernel.Money
	Items            []*OrderItem
}

// NewOrder creates a new Order in the Accepted status with validation.
// This is the only way to create a valid Order: it validates the identifiers,
// the order type and every item, and derives whether a shopping phase applies.
//
// Example:
//
//	o, err := order.NewOrder(order.NewOrderParams{
//	    ID:       kernel.NewUUID(),
//	    WorkerID: kernel.NewUUID(),
//	    Type:     order.TypeRegular,
//	    CreatedAt: time.Now(),
//	    Items:    items,
//	})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(params NewOrderParams) (*Order, error) {
	o := &Order{
		publicOrderNumber: params.PublicOrderNumber,
		shopID:            params.ShopID,
		customerID:        params.CustomerID,
		customerPhone:     params.CustomerPhone,
		status:            Accepted,
		deliveryDeadline:  params.DeliveryDeadline,
		serviceFee:        params.ServiceFee,
		deliveryFee:       params.DeliveryFee,
		discount:          params.Discount,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setWorkerID(params.WorkerID),
		o.setType(params.Type, params.ReelFromRestaurant),
		o.setCreatedAt(params.CreatedAt),
		o.setItems(params.Items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an Order.
type RestoreOrderParams struct {
	NewOrderParams

	Status             Status
	ProofOfDeliveryRef string
	WalletCredited     bool
}

// RestoreOrder reconstructs an Order from persistence, including its status
// and side-effect bookkeeping. Used by repositories; validates the restored
// status on the way in.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(params.NewOrderParams)
	if err != nil {
		return nil, err
	}

	if err = params.Status.Validate(); err != nil {
		return nil, err
	}

	o.status = params.Status
	o.proofOfDeliveryRef = params.ProofOfDeliveryRef
	o.walletCredited = params.WalletCredited
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. Call it when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PublicOrderNumber returns the customer-facing order reference.
func (o *Order) PublicOrderNumber() string {
	return o.publicOrderNumber
}

// ShopID returns the shop the order is scoped to; may be empty.
func (o *Order) ShopID() string {
	return o.shopID
}

// CustomerID returns the customer identifier; may be empty.
func (o *Order) CustomerID() string {
	return o.customerID
}

// CustomerPhone returns the customer phone number; may be empty.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// WorkerID returns the assigned delivery worker's identifier.
func (o *Order) WorkerID() kernel.UUID {
	return o.workerID
}

// Type returns the order type.
func (o *Order) Type() OrderType {
	return o.orderType
}

// ShoppingRequired reports whether the order passes through the Shopping
// status. False for restaurant orders and pre-made reel orders.
func (o *Order) ShoppingRequired() bool {
	return o.shoppingRequired
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveryDeadline returns the promised delivery time, or nil when none was
// promised.
func (o *Order) DeliveryDeadline() *time.Time {
	return o.deliveryDeadline
}

// ServiceFee returns the worker's service fee line item.
func (o *Order) ServiceFee() kernel.Money {
	return o.serviceFee
}

// DeliveryFee returns the worker's delivery fee line item.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Discount returns the discount applied to the items total.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// Items returns the order's items. The slice must not be mutated by callers;
// found-state changes go through MarkItemFound.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// ProofOfDeliveryRef returns the externally supplied proof-of-delivery
// artifact reference, or an empty string when none is attached.
func (o *Order) ProofOfDeliveryRef() string {
	return o.proofOfDeliveryRef
}

// WalletCredited reports whether the fee credit event was already emitted.
func (o *Order) WalletCredited() bool {
	return o.walletCredited
}

// StartShopping transitions the order from Accepted to Shopping.
// Rejected for orders whose shopping phase is skipped.
func (o *Order) StartShopping() error {
	newStatus, err := o.status.StartShopping(o.shoppingRequired)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPicked transitions the order from Accepted to Picked.
// Valid only for restaurant and pre-made reel orders.
func (o *Order) MarkPicked() error {
	newStatus, err := o.status.MarkPicked(o.shoppingRequired)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkItemFound records an availability decision for one of the order's items.
//
// Allowed only while the order is in the Shopping status; any other status
// returns a LedgerError. found=false resets the found quantity to 0. For
// found=true, a nil foundQuantity defaults to the item's full quantity, and an
// explicit quantity outside [1, quantity] returns an InvalidQuantityError.
func (o *Order) MarkItemFound(itemID kernel.UUID, found bool, foundQuantity *int) (*OrderItem, error) {
	if o.status != Shopping {
		return nil, NewLedgerError(o.status)
	}

	item := o.findItem(itemID)
	if item == nil {
		return nil, errs.NewObjectNotFoundError("itemId", itemID.String())
	}

	if err := item.markFound(found, foundQuantity); err != nil {
		return nil, err
	}

	return item, nil
}

// DepartForCustomer transitions the order to OnTheWay.
//
// Leaving Shopping requires at least one resolved item; otherwise an
// IncompleteShoppingError is returned and nothing changes. The returned bool
// reports whether the worker's fee credit event must be emitted: it is true
// exactly once per order, on the first successful departure, so a retried
// transition never double-fires the wallet credit.
func (o *Order) DepartForCustomer() (creditDue bool, err error) {
	if o.status == Shopping && ResolvedItemCount(o.items) == 0 {
		return false, NewIncompleteShoppingError(len(o.items))
	}

	newStatus, err := o.status.Depart(o.shoppingRequired)
	if err != nil {
		return false, err
	}

	o.status = newStatus

	if !o.walletCredited {
		o.walletCredited = true
		return true, nil
	}
	return false, nil
}

// ArriveAtCustomer transitions the order from OnTheWay to AtCustomer.
func (o *Order) ArriveAtCustomer() error {
	newStatus, err := o.status.Arrive()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AttachDeliveryProof stores the reference to the externally captured
// proof-of-delivery artifact (invoice or photo). The engine only checks the
// reference is present before delivery confirmation; the content is the
// external collaborator's concern.
func (o *Order) AttachDeliveryProof(ref string) error {
	if o.status == Delivered {
		return NewTerminalStateError(Delivered)
	}
	if ref == "" {
		return errs.NewValueIsRequiredError("proofOfDeliveryRef")
	}

	o.proofOfDeliveryRef = ref
	return nil
}

// HasDeliveryProof reports whether a proof-of-delivery reference is attached.
func (o *Order) HasDeliveryProof() bool {
	return o.proofOfDeliveryRef != ""
}

// CompleteDelivery transitions the order to Delivered, the terminal status.
//
// Confirming from AtCustomer requires an attached proof-of-delivery
// reference; confirming early from OnTheWay follows the lifecycle table and
// carries no proof guard.
func (o *Order) CompleteDelivery() error {
	if o.status == AtCustomer && !o.HasDeliveryProof() {
		return errs.NewValueIsRequiredError("proofOfDeliveryRef")
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReadyForGroupDelivery reports whether the order may take part in an atomic
// group delivery confirmation: it must be OnTheWay or AtCustomer and have a
// proof-of-delivery reference attached.
func (o *Order) ReadyForGroupDelivery() bool {
	return (o.status == OnTheWay || o.status == AtCustomer) && o.HasDeliveryProof()
}

// RequestTransition applies the transition to the target status, dispatching
// to the corresponding lifecycle operation. The returned bool reports whether
// a wallet credit event became due (see DepartForCustomer).
func (o *Order) RequestTransition(target Status) (creditDue bool, err error) {
	switch target {
	case Shopping:
		return false, o.StartShopping()
	case Picked:
		return false, o.MarkPicked()
	case OnTheWay:
		return o.DepartForCustomer()
	case AtCustomer:
		return false, o.ArriveAtCustomer()
	case Delivered:
		return false, o.CompleteDelivery()
	case Accepted, StatusUnknown:
		return false, NewTransitionError(o.status, target)
	default:
		return false, NewTransitionError(o.status, target)
	}
}

// UnitsRequested returns the total number of requested units.
func (o *Order) UnitsRequested() int {
	return UnitsRequested(o.items)
}

// UnitsFound returns the total number of units actually picked.
func (o *Order) UnitsFound() int {
	return UnitsFound(o.items)
}

// UnitsShort returns the number of requested units that were not found.
func (o *Order) UnitsShort() int {
	return UnitsShort(o.items)
}

// RefundValue returns the value of requested units that were not found.
func (o *Order) RefundValue() kernel.Money {
	return RefundValue(o.items)
}

func (o *Order) findItem(itemID kernel.UUID) *OrderItem {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item
		}
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	o.workerID = workerID
	return nil
}

func (o *Order) setType(orderType OrderType, reelFromRestaurant bool) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	o.orderType = orderType
	o.shoppingRequired = orderType == TypeRegular ||
		(orderType == TypeReel && !reelFromRestaurant)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
