package http

import (
	"encoding/json"
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the body of POST /orders. UnitPrice accepts a JSON
// number or a numeric string and is parsed without going through float64.
type CreateOrderRequest struct {
	CustomerName string          `json:"customerName"`
	ProductName  string          `json:"productName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

// OrderResponse is the JSON shape of an order. Amounts are JSON numbers.
type OrderResponse struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customerName"`
	ProductName  string      `json:"productName"`
	Quantity     int         `json:"quantity"`
	UnitPrice    json.Number `json:"unitPrice"`
	Total        json.Number `json:"total"`
}

// ErrorResponse is the body of every 4xx and 5xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by /health and /ready.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// InfoResponse is returned by /info.
type InfoResponse struct {
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID().Int64(),
		CustomerName: o.CustomerName(),
		ProductName:  o.ProductName(),
		Quantity:     o.Quantity(),
		UnitPrice:    formatAmount(o.UnitPrice()),
		Total:        formatAmount(o.CalculateTotal()),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return response
}

// formatAmount renders at least two decimal places (50 -> 50.00) and keeps
// any further precision the value carries (0.999 stays 0.999).
func formatAmount(d decimal.Decimal) json.Number {
	if d.Equal(d.Round(2)) {
		return json.Number(d.StringFixed(2))
	}
	return json.Number(d.String())
}
