// Package kernel provides core domain primitives for the laundry tracking system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - OrderID: A value object for the human-shareable order identifier, with
//     generation, parsing, validation and case-insensitive comparison
//   - NormalizeLookupCode: Shape validation for identifiers arriving from the
//     public tracking endpoint before they reach persistence
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
