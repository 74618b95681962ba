// Package jobs provides scheduled background tasks for the laundry shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order tracking.
//
// # Available Jobs
//
// 1. PickupReminderJob - Runs hourly to remind customers whose laundry has been Ready for Pickup for more than two days
// 2. AuditRetentionJob - Runs nightly to remove audit records older than the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the order projection and required handlers
//	jobManager := jobs.NewJobManager(orderCache, notificationPublisher, purgeHandler, retentionDays, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Reminder failures for one order never stop the sweep; the order is retried on the next run
// - Retention failures are logged and retried the next night
// - Failed job starts will stop any already running jobs
package jobs
