package order

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrHistoryIsCorrupt is returned by RestoreOrder when the persisted status
	// history is empty or its last entry disagrees with the persisted status.
	ErrHistoryIsCorrupt = errors.New("status history must be non-empty and end with the current status")
)

const (
	maxCustomerNameLength = 100
	minPhoneLength        = 7
	maxPhoneLength        = 20
	maxItems              = 1000
)

var (
	customerNamePattern = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
	phonePattern        = regexp.MustCompile(`^[+]?[\d\s\-()]+$`)
)

// HistoryEntry records one status transition with the time it happened.
// Entries are append-only and never reordered.
type HistoryEntry struct {
	Status    Status
	Timestamp time.Time
}

// Order represents one customer's laundry job, tracked from intake to pickup.
// It is the aggregate root that owns the lifecycle state machine.
//
// Order follows these invariants:
//   - Must have a valid identifier
//   - Customer name, phone, and item count pass the intake validation rules
//     and are immutable after creation (no edit operation exists)
//   - Status only moves strictly forward in the fixed sequence
//   - History is never empty; its last entry's status equals Status()
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the human-shareable order identifier
	id kernel.OrderID

	// customerName and phone are the contact fields captured at intake
	customerName string
	phone        string

	// items is the number of pieces in the order (1..1000)
	items int

	// status is the current lifecycle state; always the last history entry
	status Status

	// history is the append-only sequence of timestamped transitions
	history []HistoryEntry

	// createdAt is set once at intake
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order at intake with status Received and a single
// history entry stamped with the creation time.
//
// All three customer-supplied fields pass through the validation gate; every
// failing field is reported, not just the first, as an errs.FieldErrors value:
//
//	o, err := order.NewOrder(kernel.NewOrderID(), "Jane Doe", "+1-555-0100", 4)
//	var fields errs.FieldErrors
//	if errors.As(err, &fields) {
//	    // fields maps each failing field name to its message
//	}
//
// The gate runs identically for the staff UI and programmatic callers; it is
// the only defense against malformed data reaching storage.
func NewOrder(id kernel.OrderID, customerName, phone string, items int) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		id:            id,
		isConstructed: true,
	}

	fields := errs.NewFieldErrors()
	order.setCustomerName(customerName, fields)
	order.setPhone(phone, fields)
	order.setItems(items, fields)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order.status = Received
	order.history = []HistoryEntry{{Status: Received, Timestamp: now}}
	order.createdAt = now

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// intake gate: the stored fields were validated when the order was created,
// and re-validating here would brick records if the rules ever tighten.
//
// The structural invariants are still checked: the history must be non-empty
// and its last entry must carry the persisted status.
func RestoreOrder(
	id kernel.OrderID,
	customerName, phone string,
	items int,
	status Status,
	history []HistoryEntry,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(history) == 0 || history[len(history)-1].Status != status {
		return nil, ErrHistoryIsCorrupt
	}

	return &Order{
		id:            id,
		customerName:  customerName,
		phone:         phone,
		items:         items,
		status:        status,
		history:       history,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the customer's name as captured at intake.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Phone returns the customer's phone number as captured at intake.
func (o *Order) Phone() string {
	return o.phone
}

// Items returns the number of pieces in the order.
func (o *Order) Items() int {
	return o.items
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the append-only transition history.
// The first entry is always the initial Received status at creation time.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

// CreatedAt returns the intake time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Advance moves the order to a strictly later status and appends a
// timestamped history entry.
//
// The transition rule is enforced here even though the staff UI only ever
// offers the single next state: duplicate or out-of-order requests from a
// caller fail with an InvalidTransitionError and leave the order unmutated.
//
// Example:
//
//	if err := o.Advance(order.Washing); err != nil {
//	    // the order was already at Washing or later
//	}
func (o *Order) Advance(target Status) error {
	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.history = append(o.history, HistoryEntry{Status: newStatus, Timestamp: time.Now().UTC()})
	return nil
}

// setCustomerName validates and sets the customer name, recording any
// failure against the "customerName" field.
// This is a private method used only during construction.
func (o *Order) setCustomerName(customerName string, fields errs.FieldErrors) {
	trimmed := strings.TrimSpace(customerName)
	switch {
	case trimmed == "":
		fields.Set("customerName", "Customer name is required")
	case len(trimmed) > maxCustomerNameLength:
		fields.Set("customerName", "Name must be less than 100 characters")
	case !customerNamePattern.MatchString(trimmed):
		fields.Set("customerName", "Name contains invalid characters")
	default:
		o.customerName = trimmed
	}
}

// setPhone validates and sets the phone number, recording any failure
// against the "phone" field.
// This is a private method used only during construction.
func (o *Order) setPhone(phone string, fields errs.FieldErrors) {
	trimmed := strings.TrimSpace(phone)
	switch {
	case len(trimmed) < minPhoneLength:
		fields.Set("phone", "Phone number must be at least 7 digits")
	case len(trimmed) > maxPhoneLength:
		fields.Set("phone", "Phone number is too long")
	case !phonePattern.MatchString(trimmed):
		fields.Set("phone", "Invalid phone number format")
	default:
		o.phone = trimmed
	}
}

// setItems validates and sets the item count, recording any failure against
// the "items" field.
// This is a private method used only during construction.
func (o *Order) setItems(items int, fields errs.FieldErrors) {
	switch {
	case items <= 0:
		fields.Set("items", "Items must be greater than 0")
	case items > maxItems:
		fields.Set("items", "Maximum 1000 items per order")
	default:
		o.items = items
	}
}
