package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/passeio/internal/pkg/requestcontext"
)

// RequestContextMiddleware attaches a request ID to the request context and
// echoes it back in the X-Request-ID header
func RequestContextMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := requestcontext.FromEchoContext(c)

			ctx := requestcontext.WithRequestContext(c.Request().Context(), reqCtx)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(echo.HeaderXRequestID, reqCtx.RequestID)

			return next(c)
		}
	}
}
