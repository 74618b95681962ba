package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier.
// Identifiers are matched case-insensitively; the constructor canonicalizes
// the value so "ld-abc123-x9k2" and "LD-ABC123-X9K2" name the same order.
//
// Example:
//
//	query, err := NewGetOrderQuery("LD-ABC123-X9K2")
//	if err != nil {
//	    return err
//	}
//	record, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given identifier.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the canonical identifier being looked up.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}
