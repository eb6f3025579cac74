package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestTransitionCommandIsNotConstructed = errors.New(
	"RequestTransitionCommand must be created via NewRequestTransitionCommand constructor",
)

// RequestTransitionCommand represents a request to move an order to the next
// status in its lifecycle. The target status names where the order should go;
// the aggregate decides whether that step is legal from its current status.
//
// Example:
//
//	cmd, err := NewRequestTransitionCommand(orderID, order.OnTheWay)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewRequestTransitionCommandHandler(uowFactory, locker, wallet)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition rejected: %w", err)
//	}
type RequestTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand creates a command to request a status
// transition. Validates that the order ID and the target status are valid.
func NewRequestTransitionCommand(orderID kernel.UUID, target order.Status) (RequestTransitionCommand, error) {
	command := RequestTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
	); err != nil {
		return RequestTransitionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestTransitionCommandIsNotConstructed if validation fails.
func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransitionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c RequestTransitionCommand) Target() order.Status {
	return c.target
}

func (c *RequestTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestTransitionCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
