package http

import (
	"net/http"
	"strings"

	"orders/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const maxBodySize = "1M"

// RouterOptions carries the optional collaborators of NewRouter.
type RouterOptions struct {
	// AllowOrigins lists CORS origins. Empty disables the CORS middleware.
	AllowOrigins []string
	// Metrics records request metrics and serves /metrics when set.
	Metrics interface {
		RequestRecorder
		Handler() http.Handler
	}
	// Validator checks requests against the OpenAPI document when set.
	Validator echo.MiddlewareFunc
	// OpenAPIDocument is served at /openapi.json when not empty.
	OpenAPIDocument string
	// Swagger mounts the Swagger UI under /swagger/.
	Swagger bool
}

// NewRouter builds the echo instance with middleware and routes.
func NewRouter(server *Server, logger ports.Logger, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = newErrorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(logger))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered", err, "uri", c.Request().RequestURI, "stack", string(stack))
			return err
		},
	}))
	if len(opts.AllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: opts.AllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
		}))
	}
	if opts.Metrics != nil {
		e.Use(requestMetrics(opts.Metrics))
	}
	e.Use(middleware.BodyLimit(maxBodySize))
	if opts.Validator != nil {
		e.Use(opts.Validator)
	}

	e.GET("/health", server.Health)
	e.GET("/ready", server.Ready)
	e.GET("/info", server.Info)
	e.POST("/orders", server.CreateOrder)
	e.GET("/orders", server.ListOrders)

	if opts.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(opts.Metrics.Handler()))
	}
	if opts.OpenAPIDocument != "" {
		doc := opts.OpenAPIDocument
		e.GET("/openapi.json", func(c echo.Context) error {
			return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
		})
	}
	if opts.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}

// ParseOrigins splits a comma separated origin list, dropping blanks.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
