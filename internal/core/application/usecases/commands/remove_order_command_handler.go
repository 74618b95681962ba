package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/audit"
	"laundry/internal/core/ports"
)

// RemoveOrderCommandHandler handles the business logic for order removal.
// Deletes the order inside a transaction together with an audit record that
// preserves the final snapshot, then broadcasts the deletion.
type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewRemoveOrderCommandHandler creates a handler for order removal operations.
func NewRemoveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
		events:     events,
		logger:     logger.With("component", "remove_order_handler"),
	}
}

// Handle processes the removal command.
//
// Removing an order that does not exist fails with an ObjectNotFoundError
// rather than succeeding silently, so two operators racing to delete the
// same record both learn what actually happened.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	record, err := newOrderAuditRecord(audit.ActionDelete, existing.ID().String(), existing, nil, cmd.ActorID())
	if err != nil {
		return err
	}

	if err = orderRepo.Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.AuditRepository().Append(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.events.PublishDeleted(ctx, existing.ID().String()); err != nil {
		h.logger.WarnContext(ctx, "Failed to broadcast order removal",
			"order_id", existing.ID().String(), "error", err)
	}

	return nil
}
