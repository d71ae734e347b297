package http

import (
	"errors"
	"fmt"
	"net/http"

	"orders/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// newErrorHandler renders every error that escapes a handler as ErrorResponse.
// HTTP errors keep their status and message; anything else becomes a generic 500.
func newErrorHandler(logger ports.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := msgUnhandled

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
			if httpErr.Internal != nil {
				logger.Warn("request failed", "status", code, "error", httpErr.Internal.Error())
			}
		} else {
			logger.Error("unhandled error", err, "method", c.Request().Method, "uri", c.Request().RequestURI)
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(code)
		} else {
			respErr = c.JSON(code, ErrorResponse{Error: message})
		}
		if respErr != nil {
			logger.Error("failed to write error response", respErr)
		}
	}
}
