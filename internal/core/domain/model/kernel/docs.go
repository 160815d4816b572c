// Package kernel contains shared value objects used across the domain
// model. It currently provides the UUID identifier type that order and
// profile aggregates use for identity.
//
// Value objects in this package are immutable and validate themselves:
// the zero value is always invalid and must be replaced through one of
// the provided constructor functions.
package kernel
