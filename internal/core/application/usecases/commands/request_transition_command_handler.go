package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// RequestTransitionCommandHandler applies a status transition to an order.
// Serializes concurrent requests for the same order through the order locker,
// persists the transition transactionally, and emits wallet fee credits after
// the commit when the transition produced them. A failed credit emission never
// rolls the transition back: committed status is the source of truth and the
// wallet collaborator owns retries.
//
// Example:
//
//	handler := NewRequestTransitionCommandHandler(uowFactory, locker, wallet)
//	cmd, _ := NewRequestTransitionCommand(orderID, order.OnTheWay)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var transitionErr *order.TransitionError
//	    if errors.As(err, &transitionErr) {
//	        log.Printf("illegal step: %v", transitionErr)
//	    }
//	}
type RequestTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     OrderLockProvider
	wallet     ports.WalletGateway
}

// NewRequestTransitionCommandHandler creates a handler for status transitions.
func NewRequestTransitionCommandHandler(
	uowFactory OrderUoWFactory,
	locker OrderLockProvider,
	wallet ports.WalletGateway,
) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		wallet:     wallet,
	}
}

// Handle processes the transition command. The per-order lock is held across
// the whole read-mutate-commit cycle so two concurrent departures cannot both
// pass the shopping guard and double-fire the fee credit.
func (h RequestTransitionCommandHandler) Handle(ctx context.Context, command RequestTransitionCommand) error {
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

	creditDue, err := aggregate.RequestTransition(command.Target())
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if creditDue {
		h.wallet.Credit(ctx, feeCredits(aggregate))
	}

	return nil
}

// feeCredits builds the wallet events owed for an order's departure.
// Zero-valued fees produce no event.
func feeCredits(aggregate *order.Order) []ports.CreditEvent {
	var events []ports.CreditEvent

	if !aggregate.ServiceFee().IsZero() {
		events = append(events, ports.CreditEvent{
			OrderID:  aggregate.ID(),
			WorkerID: aggregate.WorkerID(),
			Kind:     ports.CreditServiceFee,
			Amount:   aggregate.ServiceFee(),
		})
	}

	if !aggregate.DeliveryFee().IsZero() {
		events = append(events, ports.CreditEvent{
			OrderID:  aggregate.ID(),
			WorkerID: aggregate.WorkerID(),
			Kind:     ports.CreditDeliveryFee,
			Amount:   aggregate.DeliveryFee(),
		})
	}

	return events
}
