package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher broadcasts order events and notification dispatch requests.
// Implements ports.OrderEventPublisher and ports.NotificationPublisher.
//
// Order events carry the full record and are published persistently with
// the event type as the routing key, so observers can bind to order.# for
// everything or to a single event kind. Publishing a stream of events for
// one order over the same connection preserves their order.
type Publisher struct {
	conn Connection
}

// NewPublisher creates a publisher over an established broker connection.
func NewPublisher(conn Connection) *Publisher {
	return &Publisher{conn: conn}
}

// PublishCreated broadcasts a newly created order.
func (p *Publisher) PublishCreated(ctx context.Context, aggregate *order.Order) error {
	return p.publishOrderEvent(ctx, ports.EventOrderCreated, ports.OrderRecordFromDomain(aggregate))
}

// PublishUpdated broadcasts an order after a status change.
func (p *Publisher) PublishUpdated(ctx context.Context, aggregate *order.Order) error {
	return p.publishOrderEvent(ctx, ports.EventOrderUpdated, ports.OrderRecordFromDomain(aggregate))
}

// PublishDeleted broadcasts the removal of an order. The record carries only
// the identifier; observers drop their copy rather than merge.
func (p *Publisher) PublishDeleted(ctx context.Context, orderID string) error {
	return p.publishOrderEvent(ctx, ports.EventOrderDeleted, ports.OrderRecord{OrderID: orderID})
}

func (p *Publisher) publishOrderEvent(_ context.Context, eventType string, record ports.OrderRecord) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(OrdersExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	event := ports.OrderEvent{
		Type:       eventType,
		Record:     record,
		OccurredAt: time.Now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = ch.Publish(OrdersExchange, eventType, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// PublishNotification hands a dispatch request to the notifier instances.
func (p *Publisher) PublishNotification(_ context.Context, request services.DispatchRequest) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(NotificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	err = ch.Publish(NotificationsExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish request: %w", err)
	}

	return nil
}
