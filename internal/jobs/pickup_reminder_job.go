package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const (
	// staleReadyAfter is how long an order may sit in Ready for Pickup
	// before the customer is reminded.
	staleReadyAfter = 48 * time.Hour

	// reminderRepeatInterval is the minimum gap between two reminders for
	// the same order.
	reminderRepeatInterval = 24 * time.Hour
)

// OrderSource provides the current order collection. The event-reconciled
// projection satisfies it, so the hourly sweep costs no database round trip.
type OrderSource interface {
	Snapshot() []ports.OrderRecord
}

// PickupReminderJob nudges customers whose laundry has been sitting in Ready
// for Pickup. Runs hourly; an order is reminded at most once per day.
type PickupReminderJob struct {
	source        OrderSource
	notifications ports.NotificationPublisher
	cron          *cron.Cron
	logger        *slog.Logger

	mu           sync.Mutex
	lastReminded map[string]time.Time
}

// NewPickupReminderJob creates the reminder job. Reminders are queued
// through the notification publisher like any status change notification.
func NewPickupReminderJob(
	source OrderSource,
	notifications ports.NotificationPublisher,
	logger *slog.Logger,
) *PickupReminderJob {
	return &PickupReminderJob{
		source:        source,
		notifications: notifications,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "pickup_reminder_job"),
		lastReminded:  make(map[string]time.Time),
	}
}

// Start begins the reminder job on an hourly schedule.
func (j *PickupReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup reminder job started (running hourly)")
	return nil
}

// Stop stops the reminder job.
func (j *PickupReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup reminder job stopped")
}

// run performs one reminder sweep over the order projection.
func (j *PickupReminderJob) run(ctx context.Context) {
	now := time.Now().UTC()
	for _, record := range j.source.Snapshot() {
		if record.Status != order.Ready.String() {
			continue
		}
		if !j.dueForReminder(record, now) {
			continue
		}

		if err := j.remind(ctx, record); err != nil {
			j.logger.ErrorContext(ctx, "Failed to queue pickup reminder",
				"orderId", record.OrderID, "error", err)
			continue
		}

		j.markReminded(record.OrderID, now)
		j.logger.InfoContext(ctx, "Pickup reminder queued", "orderId", record.OrderID)
	}
}

// dueForReminder reports whether an order has been waiting long enough and
// was not already reminded today.
func (j *PickupReminderJob) dueForReminder(record ports.OrderRecord, now time.Time) bool {
	readyAt, ok := readySince(record)
	if !ok || now.Sub(readyAt) < staleReadyAfter {
		return false
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	last, reminded := j.lastReminded[record.OrderID]
	return !reminded || now.Sub(last) >= reminderRepeatInterval
}

func (j *PickupReminderJob) markReminded(orderID string, at time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.lastReminded[orderID] = at
}

func (j *PickupReminderJob) remind(ctx context.Context, record ports.OrderRecord) error {
	aggregate, err := record.ToDomain()
	if err != nil {
		return err
	}

	request, err := services.NewDispatchRequest(aggregate, services.ChannelSMS)
	if err != nil {
		return err
	}

	return j.notifications.PublishNotification(ctx, request)
}

// readySince returns when the order entered its current Ready status.
func readySince(record ports.OrderRecord) (time.Time, bool) {
	for i := len(record.Timestamps) - 1; i >= 0; i-- {
		if record.Timestamps[i].Status == record.Status {
			return record.Timestamps[i].Timestamp, true
		}
	}
	return time.Time{}, false
}
