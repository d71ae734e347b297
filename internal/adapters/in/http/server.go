// Package http is the inbound HTTP adapter: it translates HTTP requests into
// commands and queries and shapes their results as JSON.
package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	msgBodyRequired      = "Request body is required"
	msgInvalidBody       = "Invalid request body"
	msgCreateOrderFailed = "An error occurred while creating the order"
	msgListOrdersFailed  = "An error occurred while retrieving orders"
	msgUnhandled         = "An error occurred processing your request"
)

// ReadinessChecker reports whether the service can serve traffic.
type ReadinessChecker interface {
	Ready() bool
}

// BuildInfo describes the running build for /info.
type BuildInfo struct {
	Version     string
	Environment string
}

// Server handles the HTTP endpoints of the order service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler

	readiness ReadinessChecker
	info      BuildInfo
	logger    ports.Logger
	now       func() time.Time
}

// NewServer creates a new HTTP server with the required command and query
// handlers. readiness may be nil, in which case /ready always succeeds.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	readiness ReadinessChecker,
	info BuildInfo,
	logger ports.Logger,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		listOrdersHandler:  listOrdersHandler,
		readiness:          readiness,
		info:               info,
		logger:             logger.With("component", "http_server"),
		now:                time.Now,
	}
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req *CreateOrderRequest
	if err := c.Echo().JSONSerializer.Deserialize(c, &req); err != nil {
		if errors.Is(err, io.EOF) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgBodyRequired})
		}
		s.logger.Warn("invalid order request", "error", err.Error())
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
	}
	if req == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgBodyRequired})
	}

	cmd := commands.NewCreateOrderCommand(req.CustomerName, req.ProductName, req.Quantity, req.UnitPrice)

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			s.logger.Warn("invalid order request", "reason", err.Error())
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		s.logger.Error("error creating order", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgCreateOrderFailed})
	}

	return c.JSON(http.StatusOK, toOrderResponse(created))
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(c.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		s.logger.Error("error retrieving orders", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgListOrdersFailed})
	}

	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Health handles GET /health. It only proves the process answers.
func (s *Server) Health(c echo.Context) error {
	s.logger.Info("health check requested")
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Timestamp: s.now().UTC()})
}

// Ready handles GET /ready using the last storage probe result.
func (s *Server) Ready(c echo.Context) error {
	if s.readiness != nil && !s.readiness.Ready() {
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Timestamp: s.now().UTC()})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ready", Timestamp: s.now().UTC()})
}

// Info handles GET /info.
func (s *Server) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, InfoResponse{
		Version:     s.info.Version,
		Environment: s.info.Environment,
		Timestamp:   s.now().UTC(),
	})
}
