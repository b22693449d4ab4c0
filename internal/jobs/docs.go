// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. PerformanceRollupJob - Recomputes the per-agent monthly delivery
// performance snapshot from the delivery tracking records
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshPerformanceHandler, schedule, logger)
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
// The rollup schedule is configurable and uses the six-field cron format with
// a seconds column, e.g. "0 */5 * * * *" for every five minutes. The snapshot
// is a full replacement, so missed or overlapping runs are safe.
//
// # Error Handling
//
// A failed rollup run is logged and retried on the next tick; the previous
// snapshot stays in place until a run succeeds.
package jobs
