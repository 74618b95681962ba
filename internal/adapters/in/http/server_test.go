package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laundry/internal/core/ports"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invokeWriteError(t *testing.T, err error) (*httptest.ResponseRecorder, servers.Error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, writeError(ctx, err))

	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestWriteError(t *testing.T) {
	t.Run("should map validation failures to 400", func(t *testing.T) {
		rec, body := invokeWriteError(t, errs.NewValueIsInvalidError("items"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, body.Code)
	})

	t.Run("should map invalid transitions to 400", func(t *testing.T) {
		rec, _ := invokeWriteError(t, errs.NewInvalidTransitionError("ready", "washing"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should map missing objects to 404", func(t *testing.T) {
		rec, _ := invokeWriteError(t, errs.NewObjectNotFoundError("orderId", "LD-KQJ3F2-8X1Z"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should map stale observations to 409", func(t *testing.T) {
		rec, _ := invokeWriteError(t, errs.NewConflictError("status", "washing", "ironing"))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should map authorization failures to 403", func(t *testing.T) {
		rec, _ := invokeWriteError(t, errs.NewNotAuthorizedError("user", "revoke own admin role"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should map unknown errors to 500 without leaking detail", func(t *testing.T) {
		rec, body := invokeWriteError(t, errors.New("connection reset"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", body.Message)
	})

	t.Run("should report every failing field of a validation error", func(t *testing.T) {
		fields := errs.NewFieldErrors()
		fields.Set("phone", "Invalid phone number format")
		fields.Set("items", "Must be at least 1")

		rec, body := invokeWriteError(t, fields.Err())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, body.Fields)
		assert.Len(t, *body.Fields, 2)
	})
}

func TestTrackOrder_MalformedCode(t *testing.T) {
	t.Run("should answer 400 before touching the lookup", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/track/!!", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		server := &Server{}
		require.NoError(t, server.TrackOrder(ctx, "!!"))

		var body servers.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, body.Code)
	})
}

func TestOrderResponses(t *testing.T) {
	record := ports.OrderRecord{
		OrderID:      "LD-KQJ3F2-8X1Z",
		CustomerName: "Jane Doe",
		Phone:        "+15550100",
		Items:        3,
		Status:       "ready",
		Timestamps: []ports.TimestampEntry{
			{Status: "received", Timestamp: time.Now().UTC().Add(-time.Hour)},
			{Status: "ready", Timestamp: time.Now().UTC()},
		},
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}

	t.Run("should include the display label alongside the wire status", func(t *testing.T) {
		response := orderResponse(record)

		assert.Equal(t, "ready", response.Status)
		assert.Equal(t, "Ready for Pickup", response.StatusLabel)
		assert.Equal(t, record.Phone, response.Phone)
		assert.Len(t, response.Timestamps, 2)
	})

	t.Run("should omit the phone number from the public shape", func(t *testing.T) {
		response := publicOrderResponse(record.PublicRecord())

		encoded, err := json.Marshal(response)
		require.NoError(t, err)
		assert.NotContains(t, string(encoded), record.Phone)
		assert.Equal(t, record.CustomerName, response.CustomerName)
	})
}
