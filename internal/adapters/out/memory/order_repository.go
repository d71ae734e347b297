// Package memory provides an in-process OrderRepository for local runs and
// tests. Data lives only as long as the process.
package memory

import (
	"context"
	"slices"
	"sync"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// OrderRepository keeps orders in a map guarded by a RWMutex.
type OrderRepository struct {
	mu     sync.RWMutex
	items  map[int64]*order.Order
	logger ports.Logger
}

var _ ports.OrderRepository = (*OrderRepository)(nil)

// NewOrderRepository returns an empty in-memory repository.
func NewOrderRepository(logger ports.Logger) *OrderRepository {
	return &OrderRepository{
		items:  make(map[int64]*order.Order),
		logger: logger.With("component", "memory_order_repository"),
	}
}

// Save stores o unless it is invalid or its identifier is already taken.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) bool {
	if err := o.Validate(); err != nil {
		r.logger.Error("refusing to save invalid order", err)
		return false
	}
	if err := ctx.Err(); err != nil {
		r.logger.Error("failed to save order", err, "order_id", o.ID().Int64())
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := o.ID().Int64()
	if _, exists := r.items[id]; exists {
		r.logger.Error("failed to save order", errDuplicateID, "order_id", id)
		return false
	}
	r.items[id] = o

	r.logger.Info("order saved", "order_id", id)
	return true
}

// ListAll returns a snapshot of every order sorted by identifier.
func (r *OrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		r.logger.Error("failed to retrieve orders", err)
		return make([]*order.Order, 0), wrapListError(err)
	}

	r.mu.RLock()
	result := make([]*order.Order, 0, len(r.items))
	for _, o := range r.items {
		result = append(result, o)
	}
	r.mu.RUnlock()

	slices.SortFunc(result, func(a, b *order.Order) int {
		switch {
		case a.ID().Less(b.ID()):
			return -1
		case b.ID().Less(a.ID()):
			return 1
		default:
			return 0
		}
	})

	r.logger.Info("retrieved orders", "count", len(result))
	return result, nil
}

// Ping only fails once ctx is done.
func (r *OrderRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
