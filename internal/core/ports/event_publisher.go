package ports

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
)

// OrderEventPublisher is the change propagation contract. Every mutation of
// the order collection is broadcast so observers (the dashboard, the public
// tracker) stay consistent without re-polling. Events carry the full record;
// observers apply them last-writer-wins per identifier with no partial merge.
//
// Events for one record are delivered causally ordered: no observer sees an
// update for a record before the insert that created it.
type OrderEventPublisher interface {
	// PublishCreated broadcasts a newly created order.
	PublishCreated(ctx context.Context, aggregate *order.Order) error

	// PublishUpdated broadcasts an order after a status change.
	PublishUpdated(ctx context.Context, aggregate *order.Order) error

	// PublishDeleted broadcasts the removal of an order.
	PublishDeleted(ctx context.Context, orderID string) error
}

// NotificationPublisher hands a dispatch request to the notification
// collaborator. Failures here are delivery errors: reported, never allowed
// to roll back the status change that triggered the notification.
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, request services.DispatchRequest) error
}
