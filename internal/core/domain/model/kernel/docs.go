// Package kernel provides core domain primitives shared by the order model.
//
// The package includes:
//   - ID: A value object for positive int64 order identifiers
//   - IDGenerator: The contract for handing out new identifiers
//   - MonotonicIDGenerator: A lock-free, clock-seeded generator of strictly increasing IDs
//
// Value objects here are immutable and safe for concurrent use.
package kernel
