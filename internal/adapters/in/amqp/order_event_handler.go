package amqp

import (
	"context"
	"encoding/json"
	"log/slog"

	"laundry/internal/core/application/eventcache"
	"laundry/internal/core/ports"
)

// OrderEventHandler folds broadcast order events into the projection.
type OrderEventHandler struct {
	cache  *eventcache.OrderCache
	logger *slog.Logger
}

// NewOrderEventHandler creates a handler feeding the given projection.
func NewOrderEventHandler(cache *eventcache.OrderCache, logger *slog.Logger) *OrderEventHandler {
	return &OrderEventHandler{
		cache:  cache,
		logger: logger.With("component", "order_event_handler"),
	}
}

// HandleOrderEvent parses one event body and applies it.
func (h *OrderEventHandler) HandleOrderEvent(_ context.Context, body []byte) error {
	var event ports.OrderEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.Warn("Failed to parse order event", "error", err)
		return err
	}

	h.cache.Apply(event)
	return nil
}
