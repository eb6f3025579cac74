package postgres_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormUnitOfWorkTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *GormUnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GormUnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormUnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormUnitOfWorkTestSuite) newOrder() *order.Order {
	o, err := order.NewOrder(order.NewOrderParams{
		ID:        kernel.NewUUID(),
		ShopID:    "shop-1",
		WorkerID:  kernel.NewUUID(),
		Type:      order.TypeRestaurant,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	})
	suite.Require().NoError(err)
	return o
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	verifyUow := suite.factory.Create()
	restored, err := verifyUow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.IsEqual(restored))
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	verifyUow := suite.factory.Create()
	_, err := verifyUow.OrderRepository().Get(ctx, o.ID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *GormUnitOfWorkTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestGormUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(GormUnitOfWorkTestSuite))
}
