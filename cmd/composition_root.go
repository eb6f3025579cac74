package cmd

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/adapters/out/dispatch"
	"fulfillment/internal/adapters/out/locker"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/wallet"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	orderLocker   *locker.InMemoryOrderLocker
	walletGateway ports.WalletGateway
	notifier      ports.DispatchNotifier
	pricingEngine services.PricingEngine
	logger        *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	vatRate, err := decimal.NewFromString(configs.VATRatePercent)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid VAT rate %q: %w", configs.VATRatePercent, err)
	}

	engine, err := services.NewPricingEngine(vatRate)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderLocker:   locker.NewInMemoryOrderLocker(),
		walletGateway: wallet.NewSlogWalletGateway(logger),
		notifier:      dispatch.NewSlogDispatchNotifier(logger),
		pricingEngine: engine,
		logger:        logger,
	}, nil
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestTransitionCommandHandler(f, c.orderLocker, c.walletGateway)
}

func (c *CompositionRoot) CreateSetItemFoundCommandHandler() commands.SetItemFoundCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetItemFoundCommandHandler(f, c.orderLocker)
}

func (c *CompositionRoot) CreateAttachDeliveryProofCommandHandler() commands.AttachDeliveryProofCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachDeliveryProofCommandHandler(f, c.orderLocker)
}

func (c *CompositionRoot) CreateConfirmGroupDeliveryCommandHandler() commands.ConfirmGroupDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmGroupDeliveryCommandHandler(f, c.orderLocker)
}

func (c *CompositionRoot) CreateGetActiveBatchesQueryHandler() queries.GetActiveBatchesQueryHandler {
	return queries.NewGetActiveBatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBatchSummaryQueryHandler() queries.GetBatchSummaryQueryHandler {
	// A unit of work with no open transaction yields a repository bound to
	// the root connection, which is what a read-only query needs.
	repo := c.uowFactory.Create().OrderRepository()
	return queries.NewGetBatchSummaryQueryHandler(repo, c.pricingEngine)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	repo := c.uowFactory.Create().OrderRepository()
	return jobs.NewJobManager(repo, c.notifier, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
