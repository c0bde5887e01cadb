package validation

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// StrictBinder decodes JSON request bodies rejecting unknown fields, so every
// validated object has a strict shape.
type StrictBinder struct{}

// NewStrictBinder returns the strict request binder.
func NewStrictBinder() *StrictBinder {
	return &StrictBinder{}
}

// Bind implements echo.Binder for JSON bodies.
func (b *StrictBinder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 || req.Body == nil {
		return nil
	}

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		if field, ok := unknownField(err); ok {
			return NewError(FieldError{
				Field:   field,
				Message: fmt.Sprintf("%s is not allowed", field),
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return nil
}

// unknownField extracts the field name from the decoder's unknown-field error.
func unknownField(err error) (string, bool) {
	const marker = `json: unknown field "`
	msg := err.Error()
	if !strings.HasPrefix(msg, marker) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(msg, marker), `"`), true
}
