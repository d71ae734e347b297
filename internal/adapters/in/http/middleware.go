package http

import (
	"errors"
	"net/http"
	"time"

	"orders/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const unmatchedRoute = "unmatched"

// RequestRecorder receives one observation per served request.
type RequestRecorder interface {
	ObserveHTTPRequest(method, route string, code int, took time.Duration)
}

// requestLogger logs one structured line per request.
func requestLogger(logger ports.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogLatency:   true,
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogRequestID: true,
		LogStatus:    true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			kv := []any{
				"method", v.Method,
				"uri", v.URI,
				"route", v.RoutePath,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			}
			switch {
			case v.Status >= http.StatusInternalServerError:
				logger.Error("request failed", v.Error, kv...)
			case v.Status >= http.StatusBadRequest:
				logger.Warn("request rejected", kv...)
			default:
				logger.Info("request served", kv...)
			}
			return nil
		},
	})
}

// requestMetrics records method, matched route and status of every request.
func requestMetrics(recorder RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			code := c.Response().Status
			if err != nil && !c.Response().Committed {
				code = http.StatusInternalServerError
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					code = httpErr.Code
				}
			}

			route := c.Path()
			if code == http.StatusNotFound || code == http.StatusMethodNotAllowed || route == "" {
				route = unmatchedRoute
			}
			recorder.ObserveHTTPRequest(c.Request().Method, route, code, time.Since(start))
			return err
		}
	}
}
