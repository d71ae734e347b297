package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders.
// Implementations must be safe for concurrent use.
type OrderRepository interface {
	// Save persists a single valid order. It never returns an error: backend
	// failures are logged by the implementation and reported as false.
	// An invalid order is refused and also reported as false.
	Save(ctx context.Context, o *order.Order) bool

	// ListAll returns every stored order in ascending identifier order.
	// On backend failure it logs, returns an empty non-nil slice and an
	// error matching errs.ErrPersistence.
	ListAll(ctx context.Context) ([]*order.Order, error)
}
