package commands

import (
	"context"
)

// SetItemFoundCommandHandler records item reconciliation against an order.
// Mutations within one order are applied sequentially under the per-order
// lock; the aggregate enforces that the order is in the shopping phase and
// that the found quantity stays inside its bounds.
type SetItemFoundCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     OrderLockProvider
}

// NewSetItemFoundCommandHandler creates a handler for item reconciliation.
func NewSetItemFoundCommandHandler(uowFactory OrderUoWFactory, locker OrderLockProvider) SetItemFoundCommandHandler {
	return SetItemFoundCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the reconciliation command. Returns the aggregate's typed
// errors unchanged: LedgerError outside the shopping phase, ObjectNotFoundError
// for an unknown item, InvalidQuantityError for out-of-bounds quantities.
func (h SetItemFoundCommandHandler) Handle(ctx context.Context, command SetItemFoundCommand) error {
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

	if _, err = aggregate.MarkItemFound(command.ItemID(), command.Found(), command.FoundQuantity()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
