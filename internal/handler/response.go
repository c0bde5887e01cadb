package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "fittrack/internal/errors"
	"fittrack/internal/validation"
)

// Response is the success envelope shared by every endpoint.
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// respondError maps any error to its HTTP shape: validation errors become a
// field-error list, domain errors go through the taxonomy mapping, everything
// else is a generic 500.
func respondError(c echo.Context, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, verr)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return echoErr
	}

	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// respondFieldErrors reports violated query/path constraints.
func respondFieldErrors(c echo.Context, fields []validation.FieldError) error {
	return c.JSON(http.StatusBadRequest, validation.NewError(fields...))
}
