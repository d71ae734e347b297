// Package orderrepo persists orders in PostgreSQL through GORM.
// It converts between the order entity and its row representation and
// implements ports.OrderRepository on top of a shared *gorm.DB.
package orderrepo

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table. The total is never stored.
type OrderDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement:false"`
	CustomerName string          `gorm:"type:text;not null"`
	ProductName  string          `gorm:"type:text;not null"`
	Quantity     int             `gorm:"type:integer;not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(19,4);not null"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Int64(),
		CustomerName: o.CustomerName(),
		ProductName:  o.ProductName(),
		Quantity:     o.Quantity(),
		UnitPrice:    o.UnitPrice(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return order.New(id, dto.CustomerName, dto.ProductName, dto.Quantity, dto.UnitPrice), nil
}
