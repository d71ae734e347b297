package metrics

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// InstrumentedOrderRepository decorates a ports.OrderRepository with call
// counters and latency histograms. It does not change results.
type InstrumentedOrderRepository struct {
	next    ports.OrderRepository
	metrics *Metrics
}

var _ ports.OrderRepository = (*InstrumentedOrderRepository)(nil)

// InstrumentOrderRepository wraps next.
func InstrumentOrderRepository(next ports.OrderRepository, m *Metrics) *InstrumentedOrderRepository {
	return &InstrumentedOrderRepository{next: next, metrics: m}
}

func (r *InstrumentedOrderRepository) Save(ctx context.Context, o *order.Order) bool {
	start := time.Now()
	ok := r.next.Save(ctx, o)
	r.metrics.ObserveRepositoryCall("save", ok, time.Since(start))
	return ok
}

func (r *InstrumentedOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	start := time.Now()
	orders, err := r.next.ListAll(ctx)
	r.metrics.ObserveRepositoryCall("list_all", err == nil, time.Since(start))
	return orders, err
}
