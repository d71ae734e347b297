// Package commands contains business operations that change system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Handlers follow one pattern: check the command, build the domain object,
// persist it, and log each step through ports.Logger.
package commands

import (
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderCreator builds validated orders with fresh identifiers.
// services.OrderFactory is the production implementation.
type OrderCreator interface {
	CreateOrder(customerName, productName string, quantity int, unitPrice decimal.Decimal) (*order.Order, error)
}
