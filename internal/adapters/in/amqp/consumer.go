// Package amqp contains the broker-facing inbound adapters: the order event
// consumer feeding the in-memory projection and the notification consumer
// driving customer delivery.
package amqp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"laundry/internal/adapters/out/rabbitmq"
)

const (
	notificationQueue = "laundry.notifications.dispatch"
	reconnectDelay    = 5 * time.Second
)

// MessageHandler processes one raw message body.
type MessageHandler func(ctx context.Context, body []byte) error

// Consumer drives the two broker subscriptions. Both loops reconnect with a
// fixed delay until the context is cancelled.
type Consumer struct {
	conn     rabbitmq.Connection
	prefetch int
	logger   *slog.Logger
}

// NewConsumer creates a consumer over an established broker connection.
func NewConsumer(conn rabbitmq.Connection, prefetch int, logger *slog.Logger) *Consumer {
	return &Consumer{
		conn:     conn,
		prefetch: prefetch,
		logger:   logger.With("component", "amqp_consumer"),
	}
}

// ConsumeOrderEvents subscribes to the order event stream. Every consumer
// instance gets its own exclusive queue bound to the full order.# key space,
// so each projection sees every event; delivery uses auto-ack because a lost
// event heals on the next one for the same order.
func (c *Consumer) ConsumeOrderEvents(ctx context.Context, handler MessageHandler) error {
	for {
		err := c.consumeOrderEventsOnce(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}

		c.logger.Warn("Order event consumer disconnected, reconnecting",
			"error", err, "delay", reconnectDelay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

// ConsumeNotifications subscribes to the dispatch request stream. Requests
// are acked only after the handler accepts them, and the queue is durable
// and shared: notifier instances compete so each customer message goes out
// once.
func (c *Consumer) ConsumeNotifications(ctx context.Context, handler MessageHandler) error {
	for {
		err := c.consumeNotificationsOnce(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}

		c.logger.Warn("Notification consumer disconnected, reconnecting",
			"error", err, "delay", reconnectDelay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

func (c *Consumer) consumeOrderEventsOnce(ctx context.Context, handler MessageHandler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	closeChan := ch.NotifyClose()

	if err = ch.ExchangeDeclare(rabbitmq.OrdersExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err = ch.QueueBind(q.Name, "order.#", rabbitmq.OrdersExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case chErr := <-closeChan:
			if chErr != nil {
				return fmt.Errorf("channel closed: %w", chErr)
			}
			return fmt.Errorf("channel closed gracefully")

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("messages channel closed")
			}

			if handleErr := handler(ctx, msg.Body); handleErr != nil {
				c.logger.Warn("Dropping unprocessable order event", "error", handleErr)
			}
		}
	}
}

func (c *Consumer) consumeNotificationsOnce(ctx context.Context, handler MessageHandler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	closeChan := ch.NotifyClose()

	if err = ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	if err = ch.ExchangeDeclare(rabbitmq.NotificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(notificationQueue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err = ch.QueueBind(q.Name, "", rabbitmq.NotificationsExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case chErr := <-closeChan:
			if chErr != nil {
				return fmt.Errorf("channel closed: %w", chErr)
			}
			return fmt.Errorf("channel closed gracefully")

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("messages channel closed")
			}

			if handleErr := handler(ctx, msg.Body); handleErr != nil {
				// Delivery failures are terminal for the message; the
				// notification is logged and not retried endlessly.
				c.logger.Error("Notification dispatch failed", "error", handleErr)
				_ = msg.Nack(false, false)
			} else {
				_ = msg.Ack(false)
			}
		}
	}
}
