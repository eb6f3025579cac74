package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAttachDeliveryProofCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := restoredOrder(t, order.AtCustomer, order.NewOrderParams{})
	cmd, err := commands.NewAttachDeliveryProofCommand(testOrder.ID(), "pod/ab34.jpg")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	locker := new(MockOrderLocker)

	locker.On("Lock", testOrder.ID()).Return(func() {}).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachDeliveryProofCommandHandler(factory, locker)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "pod/ab34.jpg", testOrder.ProofOfDeliveryRef())
	assert.True(t, testOrder.HasDeliveryProof())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAttachDeliveryProofCommandHandler_Handle_DeliveredOrder(t *testing.T) {
	ctx := t.Context()

	testOrder := restoredOrder(t, order.Delivered, order.NewOrderParams{})
	cmd, err := commands.NewAttachDeliveryProofCommand(testOrder.ID(), "pod/late.jpg")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	locker := new(MockOrderLocker)

	locker.On("Lock", testOrder.ID()).Return(func() {}).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAttachDeliveryProofCommandHandler(factory, locker)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var terminalErr *order.TerminalStateError
	require.ErrorAs(t, err, &terminalErr)
	assert.False(t, testOrder.HasDeliveryProof())
	orderRepo.AssertNotCalled(t, "Update")
}

func TestAttachDeliveryProofCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AttachDeliveryProofCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	locker := new(MockOrderLocker)

	handler := commands.NewAttachDeliveryProofCommandHandler(factory, locker)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAttachDeliveryProofCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
