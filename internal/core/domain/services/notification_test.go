package services_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel_Validate(t *testing.T) {
	require.NoError(t, services.ChannelSMS.Validate())
	require.NoError(t, services.ChannelWhatsApp.Validate())
	require.NoError(t, services.ChannelBoth.Validate())
	require.Error(t, services.Channel("email").Validate())
	require.Error(t, services.Channel("").Validate())
}

func TestChannel_Includes(t *testing.T) {
	assert.True(t, services.ChannelBoth.IncludesSMS())
	assert.True(t, services.ChannelBoth.IncludesWhatsApp())
	assert.True(t, services.ChannelSMS.IncludesSMS())
	assert.False(t, services.ChannelSMS.IncludesWhatsApp())
	assert.False(t, services.ChannelWhatsApp.IncludesSMS())
}

func TestNewDispatchRequest(t *testing.T) {
	o, err := order.NewOrder(kernel.NewOrderID(), "Jane Doe", "+1-555-0100", 4)
	require.NoError(t, err)
	require.NoError(t, o.Advance(order.Washing))

	req, err := services.NewDispatchRequest(o, services.ChannelBoth)

	require.NoError(t, err)
	assert.Equal(t, o.Phone(), req.Phone)
	assert.Equal(t, "Jane Doe", req.CustomerName)
	assert.Equal(t, o.ID().String(), req.OrderID)
	assert.Equal(t, "washing", req.Status)
	assert.Equal(t, "Your clothes are being washed", req.StatusMessage)
	assert.Equal(t, services.ChannelBoth, req.Channel)
	require.NoError(t, req.Validate())
}

func TestDispatchRequest_Validate(t *testing.T) {
	valid := services.DispatchRequest{
		Phone:         "+1-555-0100",
		CustomerName:  "Jane Doe",
		OrderID:       "LD-KQJ3F2-8X1Z",
		Status:        "ready",
		StatusMessage: "Your clothes are ready for pickup!",
		Channel:       services.ChannelSMS,
	}

	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("each malformed field gets its own message", func(t *testing.T) {
		req := valid
		req.Phone = "123"
		req.CustomerName = "<script>Jane</script>"
		req.OrderID = "not-an-id!"
		req.Status = "folding"
		req.Channel = services.Channel("email")

		err := req.Validate()

		require.Error(t, err)
		var fields errs.FieldErrors
		require.ErrorAs(t, err, &fields)
		assert.Len(t, fields, 5)
		assert.Contains(t, fields, "phone")
		assert.Contains(t, fields, "customerName")
		assert.Contains(t, fields, "orderId")
		assert.Contains(t, fields, "status")
		assert.Contains(t, fields, "channel")
	})

	t.Run("empty customer name is rejected", func(t *testing.T) {
		req := valid
		req.CustomerName = "  "

		err := req.Validate()

		require.Error(t, err)
		var fields errs.FieldErrors
		require.ErrorAs(t, err, &fields)
		assert.Contains(t, fields, "customerName")
	})
}

func TestDispatchRequest_MessageText(t *testing.T) {
	req := services.DispatchRequest{
		CustomerName:  "Jane Doe",
		OrderID:       "LD-KQJ3F2-8X1Z",
		Status:        "ready",
		StatusMessage: "Your clothes are ready for pickup!",
	}

	text := req.MessageText()

	assert.Contains(t, text, "Hi Jane Doe!")
	assert.Contains(t, text, "Your clothes are ready for pickup!")
	assert.Contains(t, text, "Order ID: LD-KQJ3F2-8X1Z")
}
