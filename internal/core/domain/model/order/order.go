package order

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Order represents a customer's request to buy a quantity of a product at a
// unit price. Orders are immutable: every field is set once by New and only
// exposed through accessors.
//
// A valid Order satisfies these invariants:
//   - Customer and product names are non-empty after trimming whitespace
//   - Quantity is greater than 0
//   - Unit price is greater than 0, below 10^15, with at most 4 decimal places
//
// New does not enforce the invariants. Callers that need a valid order check
// IsValid (or Validate for the reasons) before using it; stores refuse to
// persist an order that is not valid.
type Order struct {
	// id is assigned at creation and never changes
	id kernel.ID

	customerName string
	productName  string

	// quantity is the number of units ordered
	quantity int

	// unitPrice is an exact decimal amount per unit
	unitPrice decimal.Decimal
}

// New assembles an Order from its parts without validating them.
//
// Parameters:
//   - id: Identifier handed out by a kernel.IDGenerator or restored from storage
//   - customerName: Name of the ordering customer
//   - productName: Name of the ordered product
//   - quantity: Number of units
//   - unitPrice: Price of a single unit
//
// Example:
//
//	id := kernel.NewMonotonicIDGenerator().NextID()
//	o := order.New(id, "John Doe", "Widget", 3, decimal.RequireFromString("19.99"))
//	if !o.IsValid() {
//	    // reject
//	}
//	fmt.Println(o.CalculateTotal()) // 59.97
func New(id kernel.ID, customerName, productName string, quantity int, unitPrice decimal.Decimal) *Order {
	return &Order{
		id:           id,
		customerName: customerName,
		productName:  productName,
		quantity:     quantity,
		unitPrice:    unitPrice,
	}
}

// CalculateTotal returns quantity multiplied by unit price using exact decimal
// arithmetic. The result is computed on every call and never stored.
//
// Example:
//
//	o := order.New(id, "Jane", "Gadget", 3, decimal.RequireFromString("19.99"))
//	o.CalculateTotal().String() // "59.97"
func (o *Order) CalculateTotal() decimal.Decimal {
	return decimal.NewFromInt(int64(o.quantity)).Mul(o.unitPrice)
}

// IsValid reports whether the order satisfies all of its invariants.
func (o *Order) IsValid() bool {
	return o != nil && len(o.Violations()) == 0
}

// Validate returns nil for a valid order, otherwise the joined violations.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNil
	}
	return errors.Join(o.Violations()...)
}

// Violations lists every broken invariant, in field order. The list is empty
// for a valid order.
func (o *Order) Violations() []error {
	var violations []error

	if strings.TrimSpace(o.customerName) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("customerName"))
	}
	if strings.TrimSpace(o.productName) == "" {
		violations = append(violations, errs.NewValueIsRequiredError("productName"))
	}
	if o.quantity <= 0 {
		violations = append(violations,
			errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", o.quantity)))
	}
	if err := checkUnitPrice(o.unitPrice); err != nil {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause("unitPrice", err))
	}

	return violations
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerName returns the name of the ordering customer as given.
func (o *Order) CustomerName() string {
	return o.customerName
}

// ProductName returns the name of the ordered product as given.
func (o *Order) ProductName() string {
	return o.productName
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// UnitPrice returns the price of a single unit.
func (o *Order) UnitPrice() decimal.Decimal {
	return o.unitPrice
}
