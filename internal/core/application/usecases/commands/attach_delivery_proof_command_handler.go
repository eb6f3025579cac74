package commands

import (
	"context"
)

// AttachDeliveryProofCommandHandler stores a proof-of-delivery reference on
// an order. The proof can be attached at any point before the order reaches
// the terminal status; the aggregate rejects the mutation after delivery.
type AttachDeliveryProofCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     OrderLockProvider
}

// NewAttachDeliveryProofCommandHandler creates a handler for proof attachment.
func NewAttachDeliveryProofCommandHandler(uowFactory OrderUoWFactory, locker OrderLockProvider) AttachDeliveryProofCommandHandler {
	return AttachDeliveryProofCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the proof attachment command.
func (h AttachDeliveryProofCommandHandler) Handle(ctx context.Context, command AttachDeliveryProofCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	unlock := h.locker.Lock(command.OrderID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AttachDeliveryProof(command.ProofRef()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
