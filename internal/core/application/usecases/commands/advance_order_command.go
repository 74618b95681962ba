package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to move an order to a later
// lifecycle status.
//
// The command carries the status the caller last observed. The handler
// compares it against the persisted status and rejects the write with a
// ConflictError when they disagree: two terminals that both read "washing"
// cannot both advance to "ironing". The second write fails instead of
// silently overwriting the first terminal's history entry.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.OrderID
	target         order.Status
	observedStatus order.Status
	actorID        *uuid.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates an advance command. The identifier, the
// target status, and the caller's last-observed status must all be valid.
func NewAdvanceOrderCommand(
	orderID kernel.OrderID,
	target order.Status,
	observedStatus order.Status,
	actorID *uuid.UUID,
) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		actorID: actorID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setObservedStatus(observedStatus),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Target returns the status the order should move to.
func (c AdvanceOrderCommand) Target() order.Status {
	return c.target
}

// ObservedStatus returns the status the caller last read for the order.
func (c AdvanceOrderCommand) ObservedStatus() order.Status {
	return c.observedStatus
}

// ActorID returns the authenticated user requesting the advance, if any.
func (c AdvanceOrderCommand) ActorID() *uuid.UUID {
	return c.actorID
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *AdvanceOrderCommand) setObservedStatus(observed order.Status) error {
	if err := observed.Validate(); err != nil {
		return err
	}
	c.observedStatus = observed
	return nil
}
