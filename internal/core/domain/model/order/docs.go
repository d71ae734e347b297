// Package order provides the Order entity of the order service.
//
// An Order records who ordered what, how many units, and at which unit price.
// The total is always derived as quantity × unit price with exact decimal
// arithmetic (github.com/shopspring/decimal), so amounts such as 3 × 19.99
// come out as exactly 59.97.
//
// Key business rules:
//   - Customer and product names must contain non-whitespace characters
//   - Quantity and unit price must be strictly positive
//   - Orders are immutable once created
//
// Construction and validation are separate steps: New assembles an order and
// IsValid / Validate / Violations report on its invariants. The domain service
// in package services combines both and assigns identifiers.
package order
