package amqp

import (
	"context"
	"encoding/json"
	"log/slog"

	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// NotificationHandler hands parsed dispatch requests to the notifier.
type NotificationHandler struct {
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewNotificationHandler creates a handler over the given notifier.
func NewNotificationHandler(notifier ports.Notifier, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
		logger:   logger.With("component", "notification_handler"),
	}
}

// HandleNotification parses one dispatch request and delivers it.
func (h *NotificationHandler) HandleNotification(ctx context.Context, body []byte) error {
	var request services.DispatchRequest
	if err := json.Unmarshal(body, &request); err != nil {
		h.logger.Warn("Failed to parse dispatch request", "error", err)
		return err
	}

	h.logger.Info("Dispatching customer notification",
		"order_id", request.OrderID, "status", request.Status, "channel", string(request.Channel))

	return h.notifier.Dispatch(ctx, request)
}
