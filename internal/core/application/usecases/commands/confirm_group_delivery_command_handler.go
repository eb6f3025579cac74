package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
)

var ErrGroupIsEmpty = errors.New("no undelivered orders found for customer group")

// ConfirmGroupDeliveryCommandHandler delivers every order of one customer
// group atomically. All group locks are acquired before any guard runs, all
// orders are validated before any is mutated, and a single transaction covers
// the whole group: either every order becomes delivered or none does.
type ConfirmGroupDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     GroupLockProvider
}

// NewConfirmGroupDeliveryCommandHandler creates a handler for group delivery.
func NewConfirmGroupDeliveryCommandHandler(uowFactory OrderUoWFactory, locker GroupLockProvider) ConfirmGroupDeliveryCommandHandler {
	return ConfirmGroupDeliveryCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the group delivery command. Returns ErrGroupIsEmpty when
// the worker has no undelivered orders for the customer, and GroupNotReadyError
// naming the first unready order when the all-or-nothing guard fails.
func (h ConfirmGroupDeliveryCommandHandler) Handle(ctx context.Context, command ConfirmGroupDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	orders, err := ordersRepo.GetByCustomerKey(ctx, command.WorkerID(), command.CustomerKey())
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return ErrGroupIsEmpty
	}

	orderIDs := make([]kernel.UUID, 0, len(orders))
	for _, aggregate := range orders {
		orderIDs = append(orderIDs, aggregate.ID())
	}

	unlock := h.locker.LockAll(orderIDs)
	defer unlock()

	// Guard phase: no mutation happens until every order passed.
	for _, aggregate := range orders {
		if !aggregate.ReadyForGroupDelivery() {
			return batch.NewGroupNotReadyError(command.CustomerKey(), aggregate.ID().String())
		}
	}

	for _, aggregate := range orders {
		if err = aggregate.CompleteDelivery(); err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
