package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/inventory"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON envelope for every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// badRequest replies 400 with the given message. Used where request
// decoding or command construction fails before a handler runs.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError translates application errors into HTTP status codes.
// Unrecognized errors become an opaque 500 so internals never leak to
// the client.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrUnauthorized):
		// The caller is authenticated but does not own the resource.
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, inventory.ErrInsufficientStock):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, cart.ErrCartIsEmpty):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
