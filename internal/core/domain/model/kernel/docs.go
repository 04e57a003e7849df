// Package kernel provides core domain primitives shared by every aggregate
// in the parcel-delivery system.
//
// The package currently contains:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//
// These primitives are immutable and thread-safe, and enforce that domain
// objects always carry valid identities.
package kernel
