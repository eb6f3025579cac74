package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrConfirmGroupDeliveryCommandIsNotConstructed = errors.New(
		"ConfirmGroupDeliveryCommand must be created via NewConfirmGroupDeliveryCommand constructor",
	)
	ErrCustomerKeyIsRequired = errors.New("customer key is required")
)

// ConfirmGroupDeliveryCommand represents a request to deliver every order a
// worker carries for one customer in a single step. Delivery succeeds only if
// all orders in the group are ready; otherwise nothing changes.
//
// Example:
//
//	cmd, err := NewConfirmGroupDeliveryCommand(workerID, batch.CustomerKey("c1", "+995550011"))
//	if err != nil {
//	    return fmt.Errorf("invalid group request: %w", err)
//	}
//
//	handler := NewConfirmGroupDeliveryCommandHandler(uowFactory, locker)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var notReady *batch.GroupNotReadyError
//	    if errors.As(err, &notReady) {
//	        log.Printf("order %s is not ready", notReady.OrderID)
//	    }
//	}
type ConfirmGroupDeliveryCommand struct { //nolint:recvcheck //using for validation
	workerID    kernel.UUID
	customerKey string

	guard guard.ConstructorGuard
}

// NewConfirmGroupDeliveryCommand creates a command to deliver a customer
// group. Validates the worker ID and requires a non-empty customer key.
func NewConfirmGroupDeliveryCommand(workerID kernel.UUID, customerKey string) (ConfirmGroupDeliveryCommand, error) {
	command := ConfirmGroupDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setWorkerID(workerID),
		command.setCustomerKey(customerKey),
	); err != nil {
		return ConfirmGroupDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmGroupDeliveryCommandIsNotConstructed if validation fails.
func (c ConfirmGroupDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmGroupDeliveryCommandIsNotConstructed)
}

// WorkerID returns the identifier of the worker carrying the group.
func (c ConfirmGroupDeliveryCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// CustomerKey returns the grouping key identifying the customer.
func (c ConfirmGroupDeliveryCommand) CustomerKey() string {
	return c.customerKey
}

func (c *ConfirmGroupDeliveryCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *ConfirmGroupDeliveryCommand) setCustomerKey(customerKey string) error {
	if customerKey == "" {
		return ErrCustomerKeyIsRequired
	}

	c.customerKey = customerKey
	return nil
}
