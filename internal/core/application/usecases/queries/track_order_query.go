package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery is the public, unauthenticated order lookup. The code is
// customer-supplied, so it is normalized and shape-checked before it goes
// anywhere near the database; the response omits the phone number.
type TrackOrderQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query from a customer-supplied code.
// Returns a validation error when the code cannot be a real identifier, so
// junk input is rejected without a database round trip.
func NewTrackOrderQuery(code string) (TrackOrderQuery, error) {
	normalized, err := kernel.NormalizeLookupCode(code)
	if err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{code: normalized, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// Code returns the normalized lookup code.
func (q TrackOrderQuery) Code() string {
	return q.code
}
