package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob manages the scheduled sweep of active orders.
// Runs every minute to classify undelivered orders against the clock and
// notify dispatch about late and urgent ones.
type OverdueOrdersJob struct {
	orders     ports.OrderRepository
	classifier services.UrgencyClassifier
	notifier   ports.DispatchNotifier
	now        func() time.Time
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOverdueOrdersJob creates a new job for escalating overdue orders.
// Loads undelivered orders from the repository and classifies them every minute.
func NewOverdueOrdersJob(
	orders ports.OrderRepository,
	notifier ports.DispatchNotifier,
	logger *slog.Logger,
) *OverdueOrdersJob {
	return newOverdueOrdersJob(orders, notifier, logger, time.Now)
}

// NewOverdueOrdersJobWithClock creates the job with an injected clock for
// deterministic classification in tests.
func NewOverdueOrdersJobWithClock(
	orders ports.OrderRepository,
	notifier ports.DispatchNotifier,
	logger *slog.Logger,
	now func() time.Time,
) *OverdueOrdersJob {
	return newOverdueOrdersJob(orders, notifier, logger, now)
}

func newOverdueOrdersJob(
	orders ports.OrderRepository,
	notifier ports.DispatchNotifier,
	logger *slog.Logger,
	now func() time.Time,
) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		orders:     orders,
		classifier: services.NewUrgencyClassifierWithClock(now),
		notifier:   notifier,
		now:        now,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "overdue_orders_job"),
	}
}

// Start begins the overdue orders job to run every minute.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.Sweep(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started (running every minute)")
	return nil
}

// Sweep classifies every undelivered order once and notifies dispatch for
// late and urgent ones. A failed load is logged and retried on the next tick.
func (j *OverdueOrdersJob) Sweep(ctx context.Context) {
	orders, err := j.orders.GetAllUndelivered(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
		return
	}

	for _, o := range orders {
		bucket := j.classifier.Classify(o)
		if bucket != services.BucketLate && bucket != services.BucketUrgent {
			continue
		}

		overdueBy := ""
		if bucket == services.BucketLate && o.DeliveryDeadline() != nil {
			overdueBy = services.FormatOverdue(j.now().Sub(*o.DeliveryDeadline()))
		}

		j.notifier.NotifyOverdue(ctx, o.ID(), bucket, overdueBy)
	}
}

// Stop stops the overdue orders job.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}
