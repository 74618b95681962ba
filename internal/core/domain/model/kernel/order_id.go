package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"laundry/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// one of the constructor functions. This error is returned when validating a
// zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

const (
	// orderIDPrefix is the fixed segment every generated identifier starts with.
	orderIDPrefix = "LD"

	// randomSuffixLength is the number of base-36 characters appended for
	// collision resistance across concurrent generators.
	randomSuffixLength = 4
)

// orderIDPattern matches the three dash-separated segments of a generated
// identifier: fixed prefix, base-36 timestamp, base-36 random suffix.
var orderIDPattern = regexp.MustCompile(`^LD-[0-9A-Z]{4,10}-[0-9A-Z]{4}$`)

// lookupCodePattern is the looser shape accepted from the public tracking
// endpoint. It admits typed or scanned input before it reaches persistence
// without leaking which identifiers actually exist.
var lookupCodePattern = regexp.MustCompile(`^[A-Z0-9-]{4,20}$`)

const base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// OrderID is a value object representing the human-shareable order identifier.
// It has the shape PREFIX-TIMESTAMP-SUFFIX, e.g. "LD-KQJ3F2-8X1Z": a fixed
// short prefix, the creation time in upper-case base-36 (monotonically
// increasing within a process), and a short random base-36 suffix so two
// terminals creating orders in the same millisecond do not collide.
//
// The identifier is not cryptographically secure; collision probability is
// low enough for a single shop, not formally bounded.
//
// The zero value of OrderID is invalid and must be constructed using NewOrderID
// or OrderIDFromString. The stored form is canonical upper-case, which makes
// comparison and lookups case-insensitive by construction.
type OrderID struct {
	value string
}

var (
	clockMu    sync.Mutex
	lastMillis int64
)

// nextMillis returns the current millisecond, bumped past the previous value
// when the clock has not advanced. Every call in a process therefore gets a
// distinct timestamp segment; the random suffix only has to separate ids
// generated by different processes.
func nextMillis() int64 {
	clockMu.Lock()
	defer clockMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastMillis {
		now = lastMillis + 1
	}
	lastMillis = now
	return now
}

// NewOrderID generates a fresh identifier from the current time and a random
// suffix. This is the primary way to allocate identifiers for new orders.
func NewOrderID() OrderID {
	timestamp := strings.ToUpper(strconv.FormatInt(nextMillis(), 36))

	suffix := make([]byte, randomSuffixLength)
	for i := range suffix {
		suffix[i] = base36Digits[rand.IntN(len(base36Digits))]
	}

	return OrderID{
		value: fmt.Sprintf("%s-%s-%s", orderIDPrefix, timestamp, strings.ToUpper(string(suffix))),
	}
}

// OrderIDFromString parses an identifier from its string representation.
// Input is trimmed and upper-cased before the shape check, so scanned or
// typed identifiers match regardless of case.
//
// Returns a ValueIsInvalidError if the string does not have the generated
// shape. This function is used when reconstructing orders from persistence
// and when parsing identifiers from request paths.
func OrderIDFromString(s string) (OrderID, error) {
	canonical := strings.ToUpper(strings.TrimSpace(s))
	if !orderIDPattern.MatchString(canonical) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%q does not match the order identifier shape", s),
		)
	}
	return OrderID{value: canonical}, nil
}

// String returns the canonical upper-case representation, e.g. "LD-KQJ3F2-8X1Z".
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two identifiers. Both sides are stored canonically, so the
// comparison is case-insensitive with respect to original input.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was properly constructed.
// Returns ErrOrderIDIsNotConstructed for a zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// NormalizeLookupCode validates and canonicalizes an identifier arriving from
// the public tracking endpoint. The accepted shape is deliberately looser than
// the generated one so the endpoint rejects malformed input with a 400 rather
// than leaking whether a well-formed identifier exists.
func NormalizeLookupCode(s string) (string, error) {
	canonical := strings.ToUpper(strings.TrimSpace(s))
	if !lookupCodePattern.MatchString(canonical) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%q is not a valid lookup code", s),
		)
	}
	return canonical, nil
}
