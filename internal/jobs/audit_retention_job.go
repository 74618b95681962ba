package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AuditPurger removes audit records older than a cutoff and reports how many
// were removed.
type AuditPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeAuditRecordsCommand) (int64, error)
}

// AuditRetentionJob enforces the audit retention window. Runs nightly and
// removes audit records older than the configured number of days.
type AuditRetentionJob struct {
	purger        AuditPurger
	retentionDays int
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewAuditRetentionJob creates the retention job.
func NewAuditRetentionJob(purger AuditPurger, retentionDays int, logger *slog.Logger) *AuditRetentionJob {
	return &AuditRetentionJob{
		purger:        purger,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "audit_retention_job"),
	}
}

// Start begins the retention job, running nightly at 03:00.
func (j *AuditRetentionJob) Start() error {
	_, err := j.cron.AddFunc("0 0 3 * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Audit retention job started (running nightly)",
		"retentionDays", j.retentionDays)
	return nil
}

// Stop stops the retention job.
func (j *AuditRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Audit retention job stopped")
}

// run performs one purge sweep.
func (j *AuditRetentionJob) run(ctx context.Context) {
	cutoff := time.Now().UTC().AddDate(0, 0, -j.retentionDays)

	cmd, err := commands.NewPurgeAuditRecordsCommand(cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build purge command", "error", err)
		return
	}

	removed, err := j.purger.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Audit retention job failed", "error", err)
		return
	}

	if removed > 0 {
		j.logger.InfoContext(ctx, "Expired audit records removed", "count", removed)
	}
}
