package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an OrderItem instance was not created
// through the NewOrderItem factory method.
var ErrItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a line item of an Order: one requested product with its listed
// unit price and quantity, plus the found/foundQuantity reconciliation state
// recorded while the owning order is in the Shopping status.
//
// OrderItem maintains these invariants:
//   - quantity >= 1
//   - 0 <= foundQuantity <= quantity
//   - found == true requires foundQuantity >= 1 (partial fulfillment allowed)
//
// Found-state mutation happens only through Order.MarkItemFound so the owning
// order's status guard is always applied.
type OrderItem struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// shopID is denormalized from the owning order; used for shop grouping.
	// May be empty when the catalog record carries no shop reference.
	shopID string

	// name is the display name of the requested product
	name string

	// unitPrice is the tax-inclusive listed price per unit
	unitPrice kernel.Money

	// quantity is the number of requested units (at least 1)
	quantity int

	// found reports whether any units were available at the shop
	found bool

	// foundQuantity is the number of units actually picked (0..quantity)
	foundQuantity int

	// resolved reports whether the worker has recorded an availability
	// decision for this item, in either direction
	resolved bool

	// isConstructed ensures the item was created via NewOrderItem
	isConstructed bool
}

// NewOrderItem creates a new OrderItem with validation. Quantity must be at
// least 1. The item starts unresolved: found is false and foundQuantity is 0.
func NewOrderItem(
	id kernel.UUID,
	shopID string,
	name string,
	unitPrice kernel.Money,
	quantity int,
) (*OrderItem, error) {
	item := &OrderItem{
		shopID:        shopID,
		name:          name,
		unitPrice:     unitPrice,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs an OrderItem from persistence, including its
// reconciliation state. Rejects found-state combinations that violate the
// foundQuantity invariants.
func RestoreOrderItem(
	id kernel.UUID,
	shopID string,
	name string,
	unitPrice kernel.Money,
	quantity int,
	found bool,
	foundQuantity int,
	resolved bool,
) (*OrderItem, error) {
	item, err := NewOrderItem(id, shopID, name, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	if foundQuantity < 0 || foundQuantity > quantity {
		return nil, NewInvalidQuantityError(foundQuantity, quantity)
	}
	if found && foundQuantity < 1 {
		return nil, NewInvalidQuantityError(foundQuantity, quantity)
	}

	item.found = found
	item.foundQuantity = foundQuantity
	item.resolved = resolved
	return item, nil
}

// Validate ensures the OrderItem instance was properly constructed.
func (i *OrderItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// ShopID returns the denormalized shop identifier, which may be empty.
func (i *OrderItem) ShopID() string {
	return i.shopID
}

// Name returns the display name of the requested product.
func (i *OrderItem) Name() string {
	return i.name
}

// UnitPrice returns the tax-inclusive listed price per unit.
func (i *OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the number of requested units.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// Found reports whether any units were available at the shop.
func (i *OrderItem) Found() bool {
	return i.found
}

// FoundQuantity returns the number of units actually picked.
func (i *OrderItem) FoundQuantity() int {
	return i.foundQuantity
}

// Resolved reports whether an availability decision has been recorded for the
// item. Leaving the Shopping status requires at least one resolved item.
func (i *OrderItem) Resolved() bool {
	return i.resolved
}

// markFound records the availability decision for the item. Package-private:
// only the owning Order may call it, after checking its own status.
//
// found=false resets foundQuantity to 0. found=true with a nil quantity
// defaults to the full requested quantity; an explicit quantity must lie within
// [1, quantity].
func (i *OrderItem) markFound(found bool, foundQuantity *int) error {
	if !found {
		i.found = false
		i.foundQuantity = 0
		i.resolved = true
		return nil
	}

	quantity := i.quantity
	if foundQuantity != nil {
		quantity = *foundQuantity
	}

	if quantity < 1 || quantity > i.quantity {
		return NewInvalidQuantityError(quantity, i.quantity)
	}

	i.found = true
	i.foundQuantity = quantity
	i.resolved = true
	return nil
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
