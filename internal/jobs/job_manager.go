package jobs

import (
	"fmt"
	"log/slog"

	"laundry/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pickupReminderJob *PickupReminderJob
	auditRetentionJob *AuditRetentionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the use case handlers as dependencies to wire up job execution.
func NewJobManager(
	source OrderSource,
	notifications ports.NotificationPublisher,
	purger AuditPurger,
	retentionDays int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pickupReminderJob: NewPickupReminderJob(source, notifications, logger),
		auditRetentionJob: NewAuditRetentionJob(purger, retentionDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pickupReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pickup reminder job: %w", err)
	}

	if err := jm.auditRetentionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.pickupReminderJob.Stop()
		return fmt.Errorf("failed to start audit retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pickupReminderJob.Stop()
	jm.auditRetentionJob.Stop()
}
