package queries

import (
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// statusFilterAll is the filter value that matches every lifecycle status.
const statusFilterAll = "all"

// ListOrdersQuery retrieves the order collection for the dashboard, newest
// first, optionally narrowed to one lifecycle status.
//
// Example:
//
//	query, err := NewListOrdersQuery("washing")
//	if err != nil {
//	    return err
//	}
//	records, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	status    order.Status
	filterAll bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query. statusFilter is a wire status
// name, "all", or empty; empty means all.
func NewListOrdersQuery(statusFilter string) (ListOrdersQuery, error) {
	if statusFilter == "" || statusFilter == statusFilterAll {
		return ListOrdersQuery{filterAll: true, guard: guard.NewConstructorGuard()}, nil
	}

	status, err := order.StatusFromString(statusFilter)
	if err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// FilterAll reports whether the listing spans every status.
func (q ListOrdersQuery) FilterAll() bool {
	return q.filterAll
}

// Status returns the single status being listed. Only meaningful when
// FilterAll is false.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}
