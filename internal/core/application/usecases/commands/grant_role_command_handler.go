package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/account"
	"laundry/internal/core/domain/model/audit"
)

// GrantRoleCommandHandler handles the business logic for granting roles.
type GrantRoleCommandHandler struct {
	uowFactory AccountUoWFactory
	logger     *slog.Logger
}

// NewGrantRoleCommandHandler creates a handler for role grant operations.
func NewGrantRoleCommandHandler(uowFactory AccountUoWFactory, logger *slog.Logger) GrantRoleCommandHandler {
	return GrantRoleCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "grant_role_handler"),
	}
}

// Handle processes the grant command. Granting a role the user already holds
// is a no-op at the repository, but the audit record is still written so the
// trail shows who attempted what.
func (h *GrantRoleCommandHandler) Handle(ctx context.Context, cmd GrantRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	assignment, err := account.NewAssignment(cmd.UserID(), cmd.Role())
	if err != nil {
		return err
	}

	record, err := newRoleAuditRecord(audit.ActionInsert, cmd.UserID(), cmd.Role().String(), cmd.ActorID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().AddAssignment(ctx, assignment); err != nil {
		return err
	}

	if err = uow.AuditRepository().Append(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
