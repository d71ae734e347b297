// Package services provides domain services for the order service.
//
// The package includes:
//   - OrderFactory: Creates validated orders and assigns their identifiers
//
// Domain services hold logic that does not belong to a single entity, here
// identifier assignment, and never talk to storage.
package services
