// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the dispatch side.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - Runs every minute to classify active orders against
// the wall clock and notify dispatch about late and urgent ones.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(orderRepository, notifier, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The overdue job uses the cron expression "0 * * * * *": once a minute.
// Urgency is derived from wall-clock time on every run rather than from
// timers scheduled at write time, so a restart never loses an escalation.
//
// # Error Handling
//
// Classification failures are logged and retried on the next tick; a single
// bad row never stops the sweep.
package jobs
