package http

import (
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// customerIDKey is the echo context key the session middleware stores the
// authenticated customer ID under. Identity is request-scoped: handlers
// read it from the context, never from shared state.
const customerIDKey = "customerID"

// SessionMiddleware authenticates requests by resolving the bearer token
// against the session store. Requests without a valid token get 401.
func SessionMiddleware(sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx)
			if token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			customerID, err := sessions.Resolve(ctx.Request().Context(), token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired session",
				})
			}

			ctx.Set(customerIDKey, customerID)
			return next(ctx)
		}
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

// callerID returns the authenticated customer set by SessionMiddleware.
func callerID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(customerIDKey).(kernel.UUID)
	return id
}
