package commands

import (
	"context"
	"log/slog"
)

// PurgeAuditRecordsCommandHandler handles audit trail retention sweeps.
type PurgeAuditRecordsCommandHandler struct {
	uowFactory AccountUoWFactory
	logger     *slog.Logger
}

// NewPurgeAuditRecordsCommandHandler creates a handler for retention sweeps.
func NewPurgeAuditRecordsCommandHandler(uowFactory AccountUoWFactory, logger *slog.Logger) PurgeAuditRecordsCommandHandler {
	return PurgeAuditRecordsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "purge_audit_records_handler"),
	}
}

// Handle processes the purge command and returns how many records were
// removed.
func (h *PurgeAuditRecordsCommandHandler) Handle(ctx context.Context, cmd PurgeAuditRecordsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.AuditRepository().PurgeOlderThan(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if removed > 0 {
		h.logger.InfoContext(ctx, "Purged expired audit records",
			"removed", removed, "cutoff", cmd.Cutoff())
	}

	return removed, nil
}
