package commands

import (
	"errors"

	"laundry/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents an intake request for a new laundry order.
// The customer-supplied fields are carried as received; the validation gate
// runs inside the Order constructor so it is enforced identically for every
// caller, staff UI or programmatic.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Jane Doe", "+1-555-0100", 4, actorID)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	phone        string
	items        int
	actorID      *uuid.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates an intake command. Field validation is
// deferred to the aggregate; only the actor, used for the audit trail, is
// fixed here. actorID may be nil for unauthenticated programmatic intake.
func NewCreateOrderCommand(customerName, phone string, items int, actorID *uuid.UUID) (CreateOrderCommand, error) {
	return CreateOrderCommand{
		customerName: customerName,
		phone:        phone,
		items:        items,
		actorID:      actorID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the submitted customer name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the submitted phone number.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Items returns the submitted item count.
func (c CreateOrderCommand) Items() int {
	return c.items
}

// ActorID returns the authenticated user performing the intake, if any.
func (c CreateOrderCommand) ActorID() *uuid.UUID {
	return c.actorID
}
