package kernel_test

import (
	"strconv"
	"strings"
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("should generate identifier with expected shape", func(t *testing.T) {
		id := kernel.NewOrderID()

		parts := strings.Split(id.String(), "-")
		require.Len(t, parts, 3)
		assert.Equal(t, "LD", parts[0])
		assert.Len(t, parts[2], 4)
		assert.Equal(t, strings.ToUpper(id.String()), id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("should round-trip through OrderIDFromString", func(t *testing.T) {
		id := kernel.NewOrderID()

		parsed, err := kernel.OrderIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("should generate distinct identifiers in rapid succession", func(t *testing.T) {
		const trials = 10000

		seen := make(map[string]struct{}, trials)
		for range trials {
			seen[kernel.NewOrderID().String()] = struct{}{}
		}

		assert.Len(t, seen, trials)
	})

	t.Run("should keep timestamp segments strictly increasing when the clock stalls", func(t *testing.T) {
		previous := int64(-1)
		for range 1000 {
			segment := strings.Split(kernel.NewOrderID().String(), "-")[1]
			millis, err := strconv.ParseInt(strings.ToLower(segment), 36, 64)
			require.NoError(t, err)
			assert.Greater(t, millis, previous)
			previous = millis
		}
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("should accept lower-case input", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("ld-kqj3f2-8x1z")

		require.NoError(t, err)
		assert.Equal(t, "LD-KQJ3F2-8X1Z", id.String())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("  LD-KQJ3F2-8X1Z ")

		require.NoError(t, err)
		assert.Equal(t, "LD-KQJ3F2-8X1Z", id.String())
	})

	t.Run("should reject malformed identifiers", func(t *testing.T) {
		malformed := []string{
			"",
			"LD",
			"LD-KQJ3F2",
			"XX-KQJ3F2-8X1Z",
			"LD-KQJ3F2-8X1",
			"LD-KQJ3F2-8X1ZZ",
			"LD-KQJ3F2-8X!Z",
			"LD--8X1Z",
		}

		for _, input := range malformed {
			_, err := kernel.OrderIDFromString(input)
			require.Error(t, err, "input %q should be rejected", input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	a, err := kernel.OrderIDFromString("LD-KQJ3F2-8X1Z")
	require.NoError(t, err)
	b, err := kernel.OrderIDFromString("ld-kqj3f2-8x1z")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(kernel.NewOrderID()))
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, err)
	})
}

func TestNormalizeLookupCode(t *testing.T) {
	t.Run("should canonicalize valid codes", func(t *testing.T) {
		code, err := kernel.NormalizeLookupCode(" ld-kqj3f2-8x1z ")

		require.NoError(t, err)
		assert.Equal(t, "LD-KQJ3F2-8X1Z", code)
	})

	t.Run("should reject codes outside the accepted shape", func(t *testing.T) {
		malformed := []string{
			"",
			"ab!",
			"abc",
			"THIS-CODE-IS-FAR-TOO-LONG-TO-BE-VALID",
			"LD KQJ3F2 8X1Z",
			"ld_kqj3f2_8x1z",
		}

		for _, input := range malformed {
			_, err := kernel.NormalizeLookupCode(input)
			require.Error(t, err, "input %q should be rejected", input)
		}
	})
}
