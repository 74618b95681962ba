package ports

import (
	"context"

	"laundry/internal/core/domain/services"
)

// Notifier delivers a customer notification over the channels named in the
// request. Implementations re-validate the request and re-confirm the
// referenced order still exists before sending, to avoid notifying about a
// record deleted between the status write and the dispatch.
type Notifier interface {
	Dispatch(ctx context.Context, request services.DispatchRequest) error
}
