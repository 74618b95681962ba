package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/account"
	"laundry/internal/core/domain/model/audit"
)

// RevokeRoleCommandHandler handles the business logic for revoking roles.
// Enforces the self-protection invariant before touching storage: an admin
// cannot revoke their own admin role.
type RevokeRoleCommandHandler struct {
	uowFactory AccountUoWFactory
	logger     *slog.Logger
}

// NewRevokeRoleCommandHandler creates a handler for role revoke operations.
func NewRevokeRoleCommandHandler(uowFactory AccountUoWFactory, logger *slog.Logger) RevokeRoleCommandHandler {
	return RevokeRoleCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "revoke_role_handler"),
	}
}

// Handle processes the revoke command. Revoking a role the user does not
// hold fails with an ObjectNotFoundError from the repository.
func (h *RevokeRoleCommandHandler) Handle(ctx context.Context, cmd RevokeRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := account.CheckRevocation(cmd.ActorID(), cmd.UserID(), cmd.Role()); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	record, err := newRoleAuditRecord(audit.ActionDelete, cmd.UserID(), cmd.Role().String(), &actorID)
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

	if err = uow.AccountRepository().RemoveAssignment(ctx, cmd.UserID(), cmd.Role()); err != nil {
		return err
	}

	if err = uow.AuditRepository().Append(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
