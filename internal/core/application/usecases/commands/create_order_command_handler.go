package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler runs the order creation workflow: build a valid
// order through the domain factory, try to persist it, and return it.
//
// Persistence is best effort. When the store reports a failed save the
// handler logs a warning and still returns the order, so callers must not
// assume a returned order is durable.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(factory, repo, logger)
//	cmd := NewCreateOrderCommand("Jane", "Gadget", 3, decimal.RequireFromString("19.99"))
//
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrValidation):
//	    // client error
//	case err != nil:
//	    // unexpected failure
//	}
type CreateOrderCommandHandler struct {
	factory OrderCreator
	repo    ports.OrderRepository
	logger  ports.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	factory OrderCreator,
	repo ports.OrderRepository,
	logger ports.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		factory: factory,
		repo:    repo,
		logger:  logger.With("component", "create_order_handler"),
	}
}

// Handle executes the workflow. Validation failures come back as
// *errs.ValidationError; every error is logged before it is returned.
// Handle makes exactly one Save attempt and never retries.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	h.logger.Info("create order started")

	if err := cmd.Validate(); err != nil {
		h.logger.Error("create order failed", err)
		return nil, err
	}

	created, err := h.factory.CreateOrder(cmd.CustomerName(), cmd.ProductName(), cmd.Quantity(), cmd.UnitPrice())
	if err != nil {
		h.logger.Error("create order failed", err)
		return nil, err
	}

	log := h.logger.With("order_id", created.ID().Int64())
	log.Info("order created")

	if !h.repo.Save(ctx, created) {
		log.Warn("order was created but failed to persist")
	} else {
		log.Info("order persisted")
	}

	return created, nil
}
