package guard_test

import (
	"errors"
	"testing"

	"laundry/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// by commands and value objects to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type intakeRequest struct {
		customerName string
		items        int
		guard        guard.ConstructorGuard
	}

	var errNotConstructed = errors.New("intakeRequest must be created via newIntakeRequest")

	newIntakeRequest := func(customerName string, items int) (intakeRequest, error) {
		if customerName == "" {
			return intakeRequest{}, errors.New("customer name is required")
		}
		if items <= 0 {
			return intakeRequest{}, errors.New("items must be greater than 0")
		}
		return intakeRequest{
			customerName: customerName,
			items:        items,
			guard:        guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		req, err := newIntakeRequest("Jane Doe", 4)

		require.NoError(t, err)
		require.NoError(t, req.guard.Validate(errNotConstructed))
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var req intakeRequest // zero value

		err := req.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
