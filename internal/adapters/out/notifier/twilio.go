// Package notifier delivers customer notifications through the Twilio
// Messages API, over SMS, WhatsApp, or both.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

const (
	twilioAPIBase  = "https://api.twilio.com/2010-04-01"
	requestTimeout = 15 * time.Second
)

// Config carries the Twilio credentials and sender numbers.
type Config struct {
	AccountSID   string
	AuthToken    string
	SMSFrom      string
	WhatsAppFrom string
}

// VerifyOrder re-confirms the referenced order still exists right before
// delivery. Returns an ObjectNotFoundError when it is gone.
type VerifyOrder func(ctx context.Context, orderID string) error

// TwilioNotifier implements ports.Notifier against the Twilio REST API.
//
// Dispatch re-validates the request and re-confirms the order before any
// message goes out: the request may have sat on the broker while the order
// was deleted, and notifying about a removed record would leak stale state
// to the customer.
type TwilioNotifier struct {
	cfg     Config
	client  *http.Client
	verify  VerifyOrder
	baseURL string
	logger  *slog.Logger
}

// NewTwilioNotifier creates a notifier with the given credentials.
func NewTwilioNotifier(cfg Config, verify VerifyOrder, logger *slog.Logger) *TwilioNotifier {
	return &TwilioNotifier{
		cfg:     cfg,
		client:  &http.Client{Timeout: requestTimeout},
		verify:  verify,
		baseURL: twilioAPIBase,
		logger:  logger.With("component", "twilio_notifier"),
	}
}

// WithBaseURL points the notifier at a different API host. Used in tests.
func (n *TwilioNotifier) WithBaseURL(baseURL string) *TwilioNotifier {
	n.baseURL = baseURL
	return n
}

// Dispatch sends the notification over every transport the request names.
// A failure on one transport does not stop the other; the first error is
// reported after both attempts.
func (n *TwilioNotifier) Dispatch(ctx context.Context, request services.DispatchRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}

	if err := n.verify(ctx, request.OrderID); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			n.logger.InfoContext(ctx, "Skipping notification for removed order",
				"order_id", request.OrderID)
			return nil
		}
		return err
	}

	body := request.MessageText()
	to := normalizePhone(request.Phone)

	var firstErr error
	if request.Channel.IncludesSMS() {
		if err := n.send(ctx, n.cfg.SMSFrom, to, body); err != nil {
			n.logger.ErrorContext(ctx, "SMS delivery failed",
				"order_id", request.OrderID, "error", err)
			firstErr = errs.NewDeliveryError("sms", request.OrderID, err)
		}
	}

	if request.Channel.IncludesWhatsApp() {
		err := n.send(ctx, "whatsapp:"+n.cfg.WhatsAppFrom, "whatsapp:"+to, body)
		if err != nil {
			n.logger.ErrorContext(ctx, "WhatsApp delivery failed",
				"order_id", request.OrderID, "error", err)
			if firstErr == nil {
				firstErr = errs.NewDeliveryError("whatsapp", request.OrderID, err)
			}
		}
	}

	return firstErr
}

func (n *TwilioNotifier) send(ctx context.Context, from, to, body string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", n.baseURL, n.cfg.AccountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(n.cfg.AccountSID, n.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("twilio returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	return nil
}

// normalizePhone strips formatting characters, keeping digits and a leading
// plus, the shape the Messages API expects.
func normalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
