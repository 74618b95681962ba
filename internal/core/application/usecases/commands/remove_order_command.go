package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents a request to delete an order entirely.
// Removal is permanent for the live collection; the audit trail keeps the
// final snapshot of the record.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	actorID *uuid.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a removal command for the given order.
func NewRemoveOrderCommand(orderID kernel.OrderID, actorID *uuid.UUID) (RemoveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RemoveOrderCommand{}, err
	}

	return RemoveOrderCommand{
		orderID: orderID,
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to remove.
func (c RemoveOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ActorID returns the authenticated user requesting the removal, if any.
func (c RemoveOrderCommand) ActorID() *uuid.UUID {
	return c.actorID
}
