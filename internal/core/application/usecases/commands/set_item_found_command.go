package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSetItemFoundCommandIsNotConstructed = errors.New(
		"SetItemFoundCommand must be created via NewSetItemFoundCommand constructor",
	)
	ErrFoundQuantityWithoutFound = errors.New("found quantity requires found to be true")
)

// SetItemFoundCommand represents a shopper's reconciliation of one order item:
// the item was found (possibly partially) or was not available at the shop.
// A nil found quantity together with found=true means the full requested
// quantity was found.
//
// Example:
//
//	two := 2
//	cmd, err := NewSetItemFoundCommand(orderID, itemID, true, &two)
//	if err != nil {
//	    return fmt.Errorf("invalid reconciliation: %w", err)
//	}
//
//	handler := NewSetItemFoundCommandHandler(uowFactory, locker)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("item update rejected: %w", err)
//	}
type SetItemFoundCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	itemID        kernel.UUID
	found         bool
	foundQuantity *int

	guard guard.ConstructorGuard
}

// NewSetItemFoundCommand creates a command to record an item reconciliation.
// Validates the identifiers and rejects a found quantity on a not-found item;
// bounds checking against the requested quantity belongs to the aggregate.
func NewSetItemFoundCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	found bool,
	foundQuantity *int,
) (SetItemFoundCommand, error) {
	command := SetItemFoundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemID(itemID),
		command.setFound(found, foundQuantity),
	); err != nil {
		return SetItemFoundCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetItemFoundCommandIsNotConstructed if validation fails.
func (c SetItemFoundCommand) Validate() error {
	return c.guard.Validate(ErrSetItemFoundCommandIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (c SetItemFoundCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item being reconciled.
func (c SetItemFoundCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Found reports whether the item was available at the shop.
func (c SetItemFoundCommand) Found() bool {
	return c.found
}

// FoundQuantity returns the number of units found, or nil for the full
// requested quantity.
func (c SetItemFoundCommand) FoundQuantity() *int {
	return c.foundQuantity
}

func (c *SetItemFoundCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetItemFoundCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *SetItemFoundCommand) setFound(found bool, foundQuantity *int) error {
	if !found && foundQuantity != nil {
		return ErrFoundQuantityWithoutFound
	}

	c.found = found
	c.foundQuantity = foundQuantity
	return nil
}
