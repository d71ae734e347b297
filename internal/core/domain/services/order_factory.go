package services

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// InvalidOrderReason is the client-facing reason attached to every order
// validation failure.
const InvalidOrderReason = "Invalid order data provided"

// OrderFactory is a domain service that turns raw order data into a valid
// Order with a fresh identifier. It never persists anything.
//
// Example:
//
//	factory, _ := services.NewOrderFactory(kernel.NewMonotonicIDGenerator())
//	o, err := factory.CreateOrder("John Doe", "Widget", 3, decimal.RequireFromString("19.99"))
//	if errors.Is(err, errs.ErrValidation) {
//	    // reject the request
//	}
//	fmt.Println(o.CalculateTotal()) // 59.97
type OrderFactory struct {
	ids kernel.IDGenerator
}

// NewOrderFactory creates an OrderFactory that draws identifiers from ids.
// Returns a ValueIsRequiredError when ids is nil.
func NewOrderFactory(ids kernel.IDGenerator) (OrderFactory, error) {
	if ids == nil {
		return OrderFactory{}, errs.NewValueIsRequiredError("ids")
	}
	return OrderFactory{ids: ids}, nil
}

// CreateOrder assigns a new identifier, assembles the order, and checks its
// invariants. Returns a *errs.ValidationError listing every violation when
// the data is invalid.
func (f OrderFactory) CreateOrder(
	customerName, productName string,
	quantity int,
	unitPrice decimal.Decimal,
) (*order.Order, error) {
	o := order.New(f.ids.NextID(), customerName, productName, quantity, unitPrice)
	if !o.IsValid() {
		return nil, errs.NewValidationError(InvalidOrderReason, o.Violations()...)
	}

	return o, nil
}
