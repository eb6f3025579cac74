package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetWorkerBatch(ctx context.Context, workerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomerKey(ctx context.Context, workerID kernel.UUID, customerKey string) ([]*order.Order, error) {
	args := m.Called(ctx, workerID, customerKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func pricingEngine(t *testing.T) services.PricingEngine {
	t.Helper()
	engine, err := services.NewPricingEngine(services.DefaultVATRatePercent)
	require.NoError(t, err)
	return engine
}

func summaryOrder(t *testing.T, workerID kernel.UUID, shopID string, price int64, quantity int) *order.Order {
	t.Helper()

	money, err := kernel.NewMoney(price)
	require.NoError(t, err)
	item, err := order.NewOrderItem(kernel.NewUUID(), shopID, "item", money, quantity)
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:        kernel.NewUUID(),
		ShopID:    shopID,
		WorkerID:  workerID,
		Type:      order.TypeRestaurant,
		CreatedAt: time.Now(),
		Items:     []*order.OrderItem{item},
	})
	require.NoError(t, err)
	return o
}

func TestGetBatchSummaryQueryHandler_Handle_SingleShop(t *testing.T) {
	ctx := t.Context()

	workerID := kernel.NewUUID()
	primary := summaryOrder(t, workerID, "shop-1", 1000, 2)
	combined := summaryOrder(t, workerID, "shop-1", 500, 3)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, primary.ID()).Return(primary, nil).Once()
	repo.On("GetWorkerBatch", ctx, workerID).Return([]*order.Order{primary, combined}, nil).Once()

	query, err := queries.NewGetBatchSummaryQuery(primary.ID())
	require.NoError(t, err)

	handler := queries.NewGetBatchSummaryQueryHandler(repo, pricingEngine(t))
	response, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, response.Shops, 1)
	assert.Equal(t, "shop-1", response.Shops[0].ShopID)
	assert.Equal(t, "3500", response.Shops[0].Total)
	assert.Equal(t, "0", response.Shops[0].Refund)
	repo.AssertExpectations(t)
}

func TestGetBatchSummaryQueryHandler_Handle_CrossShopBatch(t *testing.T) {
	ctx := t.Context()

	workerID := kernel.NewUUID()
	primary := summaryOrder(t, workerID, "shop-1", 1000, 1)
	other := summaryOrder(t, workerID, "shop-2", 300, 3)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, primary.ID()).Return(primary, nil).Once()
	repo.On("GetWorkerBatch", ctx, workerID).Return([]*order.Order{primary, other}, nil).Once()

	query, err := queries.NewGetBatchSummaryQuery(primary.ID())
	require.NoError(t, err)

	handler := queries.NewGetBatchSummaryQueryHandler(repo, pricingEngine(t))
	response, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, response.Shops, 2)
	assert.Equal(t, "shop-1", response.Shops[0].ShopID)
	assert.Equal(t, "1000", response.Shops[0].Total)
	assert.Equal(t, "shop-2", response.Shops[1].ShopID)
	assert.Equal(t, "900", response.Shops[1].Total)
}

func TestGetBatchSummaryQueryHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()

	query, err := queries.NewGetBatchSummaryQuery(orderID)
	require.NoError(t, err)

	handler := queries.NewGetBatchSummaryQueryHandler(repo, pricingEngine(t))
	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetBatchSummaryQueryHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()

	workerID := kernel.NewUUID()
	primary := summaryOrder(t, workerID, "shop-1", 1000, 1)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, primary.ID()).Return(primary, nil).Once()
	repo.On("GetWorkerBatch", ctx, workerID).Return(nil, errors.New("database error")).Once()

	query, err := queries.NewGetBatchSummaryQuery(primary.ID())
	require.NoError(t, err)

	handler := queries.NewGetBatchSummaryQueryHandler(repo, pricingEngine(t))
	_, err = handler.Handle(ctx, query)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}

func TestGetBatchSummaryQuery_Validate(t *testing.T) {
	t.Run("should fail validation when not constructed", func(t *testing.T) {
		query := queries.GetBatchSummaryQuery{}

		err := query.Validate()

		require.ErrorIs(t, err, queries.ErrGetBatchSummaryQueryIsNotConstructed)
	})

	t.Run("should return error for invalid order ID", func(t *testing.T) {
		_, err := queries.NewGetBatchSummaryQuery(kernel.UUID{})

		require.Error(t, err)
	})
}
