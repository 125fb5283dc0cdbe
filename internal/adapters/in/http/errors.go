package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kabalen/internal/pkg/errs"
)

// statusForError maps a domain error class to an HTTP status. Classification
// runs on the errs sentinels, so every typed error in the application maps
// without the HTTP layer knowing the concrete type.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrAuthenticationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders an error response. Client errors carry the domain
// message; server errors stay opaque.
func writeError(c echo.Context, err error) error {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	if status == http.StatusUnauthorized {
		message = "authentication failed"
	}

	return c.JSON(status, errorResponse{Code: status, Message: message})
}

// writeErrorWithStatus renders an error under a caller-chosen status, for the
// few routes whose contract differs from the default class mapping.
func writeErrorWithStatus(c echo.Context, status int, err error) error {
	return c.JSON(status, errorResponse{Code: status, Message: err.Error()})
}
