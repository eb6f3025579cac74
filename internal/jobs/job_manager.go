package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueOrdersJob *OverdueOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the repository and notifier as dependencies to wire up job execution.
func NewJobManager(
	orders ports.OrderRepository,
	notifier ports.DispatchNotifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueOrdersJob: NewOverdueOrdersJob(orders, notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueOrdersJob.Stop()
}
