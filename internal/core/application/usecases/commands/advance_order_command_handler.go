package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/audit"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// AdvanceOrderCommandHandler handles the business logic for status advances.
// Loads the order, guards against stale observations, applies the forward
// transition, persists it with its audit record, broadcasts the update, and
// queues the customer notification.
type AdvanceOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	events        ports.OrderEventPublisher
	notifications ports.NotificationPublisher
	logger        *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for status advance operations.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	events ports.OrderEventPublisher,
	notifications ports.NotificationPublisher,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory:    uowFactory,
		events:        events,
		notifications: notifications,
		logger:        logger.With("component", "advance_order_handler"),
	}
}

// Handle processes the advance command and returns the updated order.
//
// The stale-observation check runs against the freshly loaded row inside the
// transaction: if the persisted status no longer matches what the caller
// observed, the write fails with a ConflictError and the order is unchanged.
// The transition rule itself is still enforced by the aggregate, so
// duplicate or backward requests fail with an InvalidTransitionError.
//
// A notification failure never rolls back the status change; it is reported
// through the log and the operation is considered successful.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if current.Status() != cmd.ObservedStatus() {
		return nil, errs.NewConflictError(
			"status",
			cmd.ObservedStatus().String(),
			current.Status().String(),
		)
	}

	// Snapshot before mutation so the audit trail records the prior state.
	oldState, err := ports.OrderRecordFromDomain(current).ToDomain()
	if err != nil {
		return nil, err
	}

	if err = current.Advance(cmd.Target()); err != nil {
		return nil, err
	}

	record, err := newOrderAuditRecord(audit.ActionUpdate, current.ID().String(), oldState, current, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	if err = uow.AuditRepository().Append(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.events.PublishUpdated(ctx, current); err != nil {
		h.logger.WarnContext(ctx, "Failed to broadcast order update",
			"order_id", current.ID().String(), "error", err)
	}

	h.queueNotification(ctx, current)

	return current, nil
}

// queueNotification hands the status change to the notification collaborator.
// Delivery problems are non-fatal to the advance.
func (h *AdvanceOrderCommandHandler) queueNotification(ctx context.Context, updated *order.Order) {
	request, err := services.NewDispatchRequest(updated, services.ChannelBoth)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to build notification request",
			"order_id", updated.ID().String(), "error", err)
		return
	}

	if err = h.notifications.PublishNotification(ctx, request); err != nil {
		h.logger.ErrorContext(ctx, "Failed to queue customer notification",
			"order_id", updated.ID().String(), "status", updated.Status().String(), "error", err)
	}
}
