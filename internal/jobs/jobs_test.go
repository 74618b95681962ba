package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderSource struct {
	mock.Mock
}

func (m *MockOrderSource) Snapshot() []ports.OrderRecord {
	args := m.Called()
	return args.Get(0).([]ports.OrderRecord)
}

type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) PublishNotification(ctx context.Context, request services.DispatchRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

type MockAuditPurger struct {
	mock.Mock
}

func (m *MockAuditPurger) Handle(ctx context.Context, cmd commands.PurgeAuditRecordsCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

// readyRecord builds an order that reached Ready for Pickup at readyAt.
func readyRecord(orderID string, readyAt time.Time) ports.OrderRecord {
	createdAt := readyAt.Add(-6 * time.Hour)
	return ports.OrderRecord{
		OrderID:      orderID,
		CustomerName: "Jane Doe",
		Phone:        "+15550100",
		Items:        3,
		Status:       "ready",
		Timestamps: []ports.TimestampEntry{
			{Status: "received", Timestamp: createdAt},
			{Status: "washing", Timestamp: createdAt.Add(time.Hour)},
			{Status: "ironing", Timestamp: createdAt.Add(2 * time.Hour)},
			{Status: "ready", Timestamp: readyAt},
		},
		CreatedAt: createdAt,
	}
}

func TestPickupReminderJob_Run(t *testing.T) {
	t.Run("should remind about an order ready for more than two days", func(t *testing.T) {
		// Arrange
		stale := readyRecord("LD-KQJ3F2-8X1Z", time.Now().UTC().Add(-72*time.Hour))

		source := new(MockOrderSource)
		source.On("Snapshot").Return([]ports.OrderRecord{stale})

		notifications := new(MockNotificationPublisher)
		notifications.On("PublishNotification", mock.Anything, mock.MatchedBy(func(r services.DispatchRequest) bool {
			return r.OrderID == stale.OrderID && r.Channel == services.ChannelSMS
		})).Return(nil)

		job := NewPickupReminderJob(source, notifications, discardLogger())

		// Act
		job.run(context.Background())

		// Assert
		source.AssertExpectations(t)
		notifications.AssertExpectations(t)
	})

	t.Run("should not remind about a recently readied order", func(t *testing.T) {
		// Arrange
		fresh := readyRecord("LD-KQJ3F2-8X1Z", time.Now().UTC().Add(-2*time.Hour))

		source := new(MockOrderSource)
		source.On("Snapshot").Return([]ports.OrderRecord{fresh})

		notifications := new(MockNotificationPublisher)

		job := NewPickupReminderJob(source, notifications, discardLogger())

		// Act
		job.run(context.Background())

		// Assert
		notifications.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
	})

	t.Run("should skip orders in other statuses", func(t *testing.T) {
		// Arrange
		inWash := readyRecord("LD-KQJ3F2-8X1Z", time.Now().UTC().Add(-72*time.Hour))
		inWash.Status = "washing"

		source := new(MockOrderSource)
		source.On("Snapshot").Return([]ports.OrderRecord{inWash})

		notifications := new(MockNotificationPublisher)

		job := NewPickupReminderJob(source, notifications, discardLogger())

		// Act
		job.run(context.Background())

		// Assert
		notifications.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
	})

	t.Run("should not repeat a reminder within a day", func(t *testing.T) {
		// Arrange
		stale := readyRecord("LD-KQJ3F2-8X1Z", time.Now().UTC().Add(-72*time.Hour))

		source := new(MockOrderSource)
		source.On("Snapshot").Return([]ports.OrderRecord{stale})

		notifications := new(MockNotificationPublisher)
		notifications.On("PublishNotification", mock.Anything, mock.Anything).Return(nil).Once()

		job := NewPickupReminderJob(source, notifications, discardLogger())

		// Act
		job.run(context.Background())
		job.run(context.Background())

		// Assert
		notifications.AssertExpectations(t)
		notifications.AssertNumberOfCalls(t, "PublishNotification", 1)
	})

	t.Run("should continue the sweep when one reminder fails", func(t *testing.T) {
		// Arrange
		first := readyRecord("LD-KQJ3F2-8X1Z", time.Now().UTC().Add(-72*time.Hour))
		second := readyRecord("LD-KQJ3F2-9Y2W", time.Now().UTC().Add(-96*time.Hour))

		source := new(MockOrderSource)
		source.On("Snapshot").Return([]ports.OrderRecord{first, second})

		notifications := new(MockNotificationPublisher)
		notifications.On("PublishNotification", mock.Anything, mock.MatchedBy(func(r services.DispatchRequest) bool {
			return r.OrderID == first.OrderID
		})).Return(errors.New("broker unavailable"))
		notifications.On("PublishNotification", mock.Anything, mock.MatchedBy(func(r services.DispatchRequest) bool {
			return r.OrderID == second.OrderID
		})).Return(nil)

		job := NewPickupReminderJob(source, notifications, discardLogger())

		// Act
		job.run(context.Background())

		// Assert
		notifications.AssertExpectations(t)
	})

	t.Run("should retry a failed reminder on the next sweep", func(t *testing.T) {
		// Arrange
		stale := readyRecord("LD-KQJ3F2-8X1Z", time.Now().UTC().Add(-72*time.Hour))

		source := new(MockOrderSource)
		source.On("Snapshot").Return([]ports.OrderRecord{stale})

		notifications := new(MockNotificationPublisher)
		notifications.On("PublishNotification", mock.Anything, mock.Anything).
			Return(errors.New("broker unavailable")).Once()
		notifications.On("PublishNotification", mock.Anything, mock.Anything).
			Return(nil).Once()

		job := NewPickupReminderJob(source, notifications, discardLogger())

		// Act
		job.run(context.Background())
		job.run(context.Background())

		// Assert
		notifications.AssertNumberOfCalls(t, "PublishNotification", 2)
	})
}

func TestAuditRetentionJob_Run(t *testing.T) {
	t.Run("should purge records older than the retention window", func(t *testing.T) {
		// Arrange
		retentionDays := 180
		purger := new(MockAuditPurger)
		purger.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PurgeAuditRecordsCommand) bool {
			expected := time.Now().UTC().AddDate(0, 0, -retentionDays)
			return cmd.Cutoff().Sub(expected).Abs() < time.Minute
		})).Return(int64(12), nil)

		job := NewAuditRetentionJob(purger, retentionDays, discardLogger())

		// Act
		job.run(context.Background())

		// Assert
		purger.AssertExpectations(t)
	})

	t.Run("should survive a purge failure", func(t *testing.T) {
		// Arrange
		purger := new(MockAuditPurger)
		purger.On("Handle", mock.Anything, mock.Anything).Return(int64(0), errors.New("database unavailable"))

		job := NewAuditRetentionJob(purger, 180, discardLogger())

		// Act
		assert.NotPanics(t, func() {
			job.run(context.Background())
		})

		// Assert
		purger.AssertExpectations(t)
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should start and stop all jobs", func(t *testing.T) {
		// Arrange
		source := new(MockOrderSource)
		notifications := new(MockNotificationPublisher)
		purger := new(MockAuditPurger)

		manager := NewJobManager(source, notifications, purger, 180, discardLogger())

		// Act
		err := manager.StartAll()

		// Assert
		require.NoError(t, err)
		manager.StopAll()
	})
}
