package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAttachDeliveryProofCommandIsNotConstructed = errors.New(
		"AttachDeliveryProofCommand must be created via NewAttachDeliveryProofCommand constructor",
	)
	ErrProofRefIsRequired = errors.New("proof reference is required")
)

// AttachDeliveryProofCommand represents a request to attach a proof-of-delivery
// artifact reference (photo, signature, invoice flag) to an order. The proof
// gates the final delivery confirmation once the worker is at the customer.
//
// Example:
//
//	cmd, err := NewAttachDeliveryProofCommand(orderID, "pod/2025/06/01/ab34.jpg")
//	if err != nil {
//	    return fmt.Errorf("invalid proof: %w", err)
//	}
//
//	handler := NewAttachDeliveryProofCommandHandler(uowFactory, locker)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("proof rejected: %w", err)
//	}
type AttachDeliveryProofCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	proofRef string

	guard guard.ConstructorGuard
}

// NewAttachDeliveryProofCommand creates a command to attach a delivery proof.
// Validates that the order ID is valid and the reference is not empty.
func NewAttachDeliveryProofCommand(orderID kernel.UUID, proofRef string) (AttachDeliveryProofCommand, error) {
	command := AttachDeliveryProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setProofRef(proofRef),
	); err != nil {
		return AttachDeliveryProofCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAttachDeliveryProofCommandIsNotConstructed if validation fails.
func (c AttachDeliveryProofCommand) Validate() error {
	return c.guard.Validate(ErrAttachDeliveryProofCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the proof.
func (c AttachDeliveryProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProofRef returns the externally stored proof artifact reference.
func (c AttachDeliveryProofCommand) ProofRef() string {
	return c.proofRef
}

func (c *AttachDeliveryProofCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachDeliveryProofCommand) setProofRef(proofRef string) error {
	if proofRef == "" {
		return ErrProofRefIsRequired
	}

	c.proofRef = proofRef
	return nil
}
