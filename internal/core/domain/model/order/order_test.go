package order_test

import (
	"errors"
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewOrderID(), "Jane Doe", "+1-555-0100", 4)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in received status with one history entry", func(t *testing.T) {
		id := kernel.NewOrderID()

		o, err := order.NewOrder(id, "Jane Doe", "+1-555-0100", 4)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "Jane Doe", o.CustomerName())
		assert.Equal(t, "+1-555-0100", o.Phone())
		assert.Equal(t, 4, o.Items())
		assert.Equal(t, order.Received, o.Status())

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.Received, history[0].Status)
		assert.Equal(t, o.CreatedAt(), history[0].Timestamp)
	})

	t.Run("should trim contact fields", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewOrderID(), "  Jane Doe  ", " +1-555-0100 ", 1)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", o.CustomerName())
		assert.Equal(t, "+1-555-0100", o.Phone())
	})

	t.Run("should reject unconstructed identifier", func(t *testing.T) {
		var id kernel.OrderID

		_, err := order.NewOrder(id, "Jane Doe", "+1-555-0100", 4)

		require.Error(t, err)
	})
}

func TestNewOrder_ValidationGate(t *testing.T) {
	validName := "Jane Doe"
	validPhone := "+1-555-0100"

	t.Run("should report each invalid field with its own message", func(t *testing.T) {
		cases := []struct {
			name     string
			customer string
			phone    string
			items    int
			field    string
			message  string
		}{
			{"empty name", "", validPhone, 4, "customerName", "Customer name is required"},
			{"blank name", "   ", validPhone, 4, "customerName", "Customer name is required"},
			{"name with digits", "Jane D03", validPhone, 4, "customerName", "Name contains invalid characters"},
			{"overlong name", longName(101), validPhone, 4, "customerName", "Name must be less than 100 characters"},
			{"short phone", validName, "12345", 4, "phone", "Phone number must be at least 7 digits"},
			{"overlong phone", validName, "+123456789012345678901", 4, "phone", "Phone number is too long"},
			{"phone with letters", validName, "555-CALL-NOW", 4, "phone", "Invalid phone number format"},
			{"zero items", validName, validPhone, 0, "items", "Items must be greater than 0"},
			{"negative items", validName, validPhone, -3, "items", "Items must be greater than 0"},
			{"too many items", validName, validPhone, 1001, "items", "Maximum 1000 items per order"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(kernel.NewOrderID(), tc.customer, tc.phone, tc.items)

				require.Error(t, err)
				var fields errs.FieldErrors
				require.ErrorAs(t, err, &fields)
				assert.Equal(t, tc.message, fields[tc.field])
			})
		}
	})

	t.Run("should collect multiple failing fields in one response", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewOrderID(), "J4ne", "123", 0)

		require.Error(t, err)
		var fields errs.FieldErrors
		require.ErrorAs(t, err, &fields)
		assert.Len(t, fields, 3)
		assert.Contains(t, fields, "customerName")
		assert.Contains(t, fields, "phone")
		assert.Contains(t, fields, "items")
	})

	t.Run("should accept names with hyphen apostrophe and period", func(t *testing.T) {
		for _, name := range []string{"Mary-Jane O'Neil", "J. R. Smith", "Anne Marie"} {
			_, err := order.NewOrder(kernel.NewOrderID(), name, validPhone, 1)
			require.NoError(t, err, "name %q should be accepted", name)
		}
	})

	t.Run("should accept boundary item counts", func(t *testing.T) {
		for _, items := range []int{1, 1000} {
			_, err := order.NewOrder(kernel.NewOrderID(), validName, validPhone, items)
			require.NoError(t, err)
		}
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should append exactly one history entry per transition", func(t *testing.T) {
		o := mustNewOrder(t)

		require.NoError(t, o.Advance(order.Washing))

		assert.Equal(t, order.Washing, o.Status())
		history := o.History()
		require.Len(t, history, 2)
		assert.Equal(t, order.Washing, history[1].Status)
	})

	t.Run("should walk the full lifecycle with non-decreasing timestamps", func(t *testing.T) {
		o := mustNewOrder(t)

		for _, target := range []order.Status{order.Washing, order.Ironing, order.Ready, order.Delivered} {
			require.NoError(t, o.Advance(target))
		}

		assert.Equal(t, order.Delivered, o.Status())
		history := o.History()
		require.Len(t, history, 5)

		expected := []order.Status{order.Received, order.Washing, order.Ironing, order.Ready, order.Delivered}
		var prev time.Time
		for i, entry := range history {
			assert.Equal(t, expected[i], entry.Status)
			assert.False(t, entry.Timestamp.Before(prev))
			prev = entry.Timestamp
		}
	})

	t.Run("should reject backward transition and leave order unmutated", func(t *testing.T) {
		o := mustNewOrder(t)
		require.NoError(t, o.Advance(order.Ironing))

		err := o.Advance(order.Washing)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Ironing, o.Status())
		assert.Len(t, o.History(), 2)
	})

	t.Run("should reject transitions out of the terminal state", func(t *testing.T) {
		o := mustNewOrder(t)
		require.NoError(t, o.Advance(order.Delivered))

		err := o.Advance(order.Ready)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewOrderID()
	createdAt := time.Now().UTC().Add(-time.Hour)

	t.Run("should restore a persisted order", func(t *testing.T) {
		history := []order.HistoryEntry{
			{Status: order.Received, Timestamp: createdAt},
			{Status: order.Washing, Timestamp: createdAt.Add(10 * time.Minute)},
		}

		o, err := order.RestoreOrder(id, "Jane Doe", "+1-555-0100", 4, order.Washing, history, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Washing, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Len(t, o.History(), 2)
	})

	t.Run("should reject empty history", func(t *testing.T) {
		_, err := order.RestoreOrder(id, "Jane Doe", "+1-555-0100", 4, order.Washing, nil, createdAt)

		require.Error(t, err)
		assert.True(t, errors.Is(err, order.ErrHistoryIsCorrupt))
	})

	t.Run("should reject history that disagrees with status", func(t *testing.T) {
		history := []order.HistoryEntry{{Status: order.Received, Timestamp: createdAt}}

		_, err := order.RestoreOrder(id, "Jane Doe", "+1-555-0100", 4, order.Washing, history, createdAt)

		require.Error(t, err)
		assert.True(t, errors.Is(err, order.ErrHistoryIsCorrupt))
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})
}

func TestOrder_History_IsACopy(t *testing.T) {
	o := mustNewOrder(t)

	history := o.History()
	history[0].Status = order.Delivered

	assert.Equal(t, order.Received, o.History()[0].Status)
}

func longName(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a'
	}
	return string(b)
}
