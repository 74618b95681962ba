package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of a laundry order.
// It implements a state machine with a single monotonic forward rule:
// a status may only change to one strictly later in the fixed sequence.
//
// State sequence:
//
//	Received ──> Washing ──> Ironing ──> Ready ──> Delivered
//
// Received is the sole initial state and Delivered is terminal. Skipping
// ahead is allowed (an iron-only order goes straight to Ironing), moving
// backwards or repeating a status is not.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status assigned at intake.
	Received

	// Washing indicates the order is in the wash.
	Washing

	// Ironing indicates the order is being ironed.
	Ironing

	// Ready indicates the order is ready for pickup.
	Ready

	// Delivered indicates the order has been handed back to the customer.
	// This is the terminal state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns the wire names for all Status values, including
// Unknown, to support string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Received:  "received",
		Washing:   "washing",
		Ironing:   "ironing",
		Ready:     "ready",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns only valid Status values to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:  "received",
		Washing:   "washing",
		Ironing:   "ironing",
		Ready:     "ready",
		Delivered: "delivered",
	}
}

// getStatusLabels returns the display labels shown to staff and customers.
func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no display form
	return map[Status]string{
		Received:  "Received",
		Washing:   "Washing",
		Ironing:   "Ironing",
		Ready:     "Ready for Pickup",
		Delivered: "Delivered",
	}
}

// getStatusMessages returns the customer-facing message sent when an order
// reaches each status.
func getStatusMessages() map[Status]string {
	//nolint:exhaustive // Unknown is never notified
	return map[Status]string{
		Received:  "Your order has been received!",
		Washing:   "Your clothes are being washed",
		Ironing:   "Your clothes are being ironed",
		Ready:     "Your clothes are ready for pickup!",
		Delivered: "Your order has been delivered",
	}
}

// AllStatuses returns the five lifecycle statuses in progression order.
func AllStatuses() []Status {
	return []Status{Received, Washing, Ironing, Ready, Delivered}
}

// StatusFromString parses a wire name ("received", "washing", ...) into a
// Status. Returns a ValueIsInvalidError for anything outside the five-value set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the five lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones, which render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Label returns the human-readable display label, e.g. "Ready for Pickup".
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// CustomerMessage returns the notification text sent to the customer when an
// order reaches this status.
func (s Status) CustomerMessage() string {
	return getStatusMessages()[s]
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Advance validates the transition to target and returns the new status.
//
// Valid transitions move strictly forward in the sequence; the target does
// not have to be the immediate successor. Callers normally only offer the
// single next state, but duplicate or out-of-order events arriving from a
// caller must still be rejected here.
//
// Returns:
//   - (target, nil) on a valid forward transition
//   - (0, error) when target is invalid, or earlier than or equal to s
func (s Status) Advance(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target <= s {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}
