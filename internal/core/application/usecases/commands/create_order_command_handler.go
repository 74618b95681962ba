package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/audit"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Runs the validation gate, allocates a fresh identifier, persists the order
// with its audit record in one transaction, and broadcasts the creation.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, events, logger)
//	cmd, _ := NewCreateOrderCommand("Jane Doe", "+1-555-0100", 4, &actorID)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order intake failed: %w", err)
//	}
//	fmt.Printf("Order %s created", created.ID())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	events ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		events:     events,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the intake command and returns the created order.
//
// Validation failures are resolved locally before any transaction begins, so
// a malformed request costs no round trip. The broadcast happens after
// commit; a publish failure does not undo the durable write, so it is
// logged rather than surfaced. Observers reconcile on their next refetch.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(kernel.NewOrderID(), cmd.CustomerName(), cmd.Phone(), cmd.Items())
	if err != nil {
		return nil, err
	}

	record, err := newOrderAuditRecord(audit.ActionInsert, newOrder.ID().String(), nil, newOrder, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.AuditRepository().Append(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.events.PublishCreated(ctx, newOrder); err != nil {
		h.logger.WarnContext(ctx, "Failed to broadcast order creation",
			"order_id", newOrder.ID().String(), "error", err)
	}

	return newOrder, nil
}
