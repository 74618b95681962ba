// Package order contains the Order aggregate and its lifecycle state machine.
//
// The aggregate owns the rules of the domain: the five-state monotonic status
// sequence, the append-only timestamped transition history, and the intake
// validation gate for customer-supplied fields. All mutation goes through
// validated methods; the struct fields are private and only reachable via
// NewOrder, RestoreOrder, and Advance.
package order
