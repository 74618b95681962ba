// Package services provides domain services that orchestrate business
// operations across domain entities in the laundry tracking system.
//
// The package includes:
//   - DispatchRequest: The validated payload handed to the notification
//     collaborator when an order's status changes
//
// Domain services hold logic that spans aggregates, following
// Domain-Driven Design principles.
package services

import (
	"fmt"
	"regexp"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Channel selects which transports a notification goes out on.
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelBoth     Channel = "both"
)

// Validate checks that the channel is one of the three supported values.
func (c Channel) Validate() error {
	switch c {
	case ChannelSMS, ChannelWhatsApp, ChannelBoth:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"channel",
		fmt.Errorf("%q is not a valid channel", string(c)),
	)
}

// IncludesSMS reports whether an SMS should be sent for this channel.
func (c Channel) IncludesSMS() bool {
	return c == ChannelSMS || c == ChannelBoth
}

// IncludesWhatsApp reports whether a WhatsApp message should be sent for this channel.
func (c Channel) IncludesWhatsApp() bool {
	return c == ChannelWhatsApp || c == ChannelBoth
}

var dispatchPhonePattern = regexp.MustCompile(`^[+]?[\d\s\-()]{7,20}$`)

// DispatchRequest is the payload the notification collaborator receives when
// an order's status changes. The collaborator re-validates every field before
// any message is sent: the request may have crossed a process boundary and
// cannot be trusted to have come from a validated Order.
type DispatchRequest struct {
	Phone         string  `json:"phone"`
	CustomerName  string  `json:"customerName"`
	OrderID       string  `json:"orderId"`
	Status        string  `json:"status"`
	StatusMessage string  `json:"statusMessage"`
	Channel       Channel `json:"channel"`
}

// NewDispatchRequest builds the dispatch payload for an order that just
// reached its current status.
func NewDispatchRequest(o *order.Order, channel Channel) (DispatchRequest, error) {
	if err := o.Validate(); err != nil {
		return DispatchRequest{}, err
	}
	if err := channel.Validate(); err != nil {
		return DispatchRequest{}, err
	}

	return DispatchRequest{
		Phone:         o.Phone(),
		CustomerName:  o.CustomerName(),
		OrderID:       o.ID().String(),
		Status:        o.Status().String(),
		StatusMessage: o.Status().CustomerMessage(),
		Channel:       channel,
	}, nil
}

// Validate checks every field of the request and reports all failures at
// once as an errs.FieldErrors value. Checks: phone shape, customer name free
// of markup, order identifier shape, status in the five-value set, channel in
// the three-value set.
func (r DispatchRequest) Validate() error {
	fields := errs.NewFieldErrors()

	if !dispatchPhonePattern.MatchString(strings.TrimSpace(r.Phone)) {
		fields.Set("phone", "Invalid phone number format")
	}
	if strings.TrimSpace(r.CustomerName) == "" {
		fields.Set("customerName", "Customer name is required")
	} else if strings.ContainsAny(r.CustomerName, "<>&") {
		fields.Set("customerName", "Customer name must not contain markup")
	}
	if _, err := kernel.OrderIDFromString(r.OrderID); err != nil {
		fields.Set("orderId", "Invalid order ID format")
	}
	if _, err := order.StatusFromString(r.Status); err != nil {
		fields.Set("status", "Invalid status")
	}
	if err := r.Channel.Validate(); err != nil {
		fields.Set("channel", "Invalid channel")
	}

	return fields.Err()
}

// MessageText renders the customer-facing message body for the request.
// Layout follows the shop's standard template.
func (r DispatchRequest) MessageText() string {
	emoji := statusEmoji(r.Status)
	return fmt.Sprintf(
		"%s Smart Laundry Update\n\nHi %s!\n\n%s\n\nOrder ID: %s\n\nTrack your order anytime!",
		emoji, r.CustomerName, r.StatusMessage, r.OrderID,
	)
}

func statusEmoji(status string) string {
	switch status {
	case order.Received.String():
		return "📥"
	case order.Washing.String():
		return "🧺"
	case order.Ironing.String():
		return "👔"
	case order.Ready.String():
		return "✅"
	case order.Delivered.String():
		return "🎉"
	}
	return "📋"
}
