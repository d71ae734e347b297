package commands

import (
	"errors"

	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand carries the raw data of an order creation request.
// It does not validate the data: business rules belong to the order domain,
// which reports every violation at once.
//
// Example:
//
//	cmd := NewCreateOrderCommand("John Doe", "Widget", 5, decimal.RequireFromString("10.00"))
//
//	handler := NewCreateOrderCommandHandler(factory, repo, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created, total %s", created.ID(), created.CalculateTotal())
type CreateOrderCommand struct {
	customerName string
	productName  string
	quantity     int
	unitPrice    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
func NewCreateOrderCommand(
	customerName, productName string,
	quantity int,
	unitPrice decimal.Decimal,
) CreateOrderCommand {
	return CreateOrderCommand{
		customerName: customerName,
		productName:  productName,
		quantity:     quantity,
		unitPrice:    unitPrice,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the name of the ordering customer.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// ProductName returns the name of the ordered product.
func (c CreateOrderCommand) ProductName() string {
	return c.productName
}

// Quantity returns the number of units requested.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the requested price per unit.
func (c CreateOrderCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}
