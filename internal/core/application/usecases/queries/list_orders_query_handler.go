package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// ListOrdersQueryHandler reads all orders from the repository.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(repo, logger)
//	all, err := handler.Handle(ctx, NewListOrdersQuery())
//	if errors.Is(err, errs.ErrPersistence) {
//	    // storage unavailable
//	}
type ListOrdersQueryHandler struct {
	repo   ports.OrderRepository
	logger ports.Logger
}

// NewListOrdersQueryHandler creates a handler backed by repo.
func NewListOrdersQueryHandler(repo ports.OrderRepository, logger ports.Logger) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		repo:   repo,
		logger: logger.With("component", "list_orders_handler"),
	}
}

// Handle returns all orders in ascending identifier order. The slice is never
// nil when err is nil.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.ListAll(ctx)
	if err != nil {
		h.logger.Error("list orders failed", err)
		return nil, err
	}
	if orders == nil {
		orders = make([]*order.Order, 0)
	}

	return orders, nil
}
