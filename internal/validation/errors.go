package validation

// FieldError describes a single violated constraint, scoped to the offending
// field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates every violated field of one request. Validation failures
// never reach the service layer.
type Error struct {
	Fields []FieldError `json:"errors"`
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msg := e.Fields[0].Message
	for _, f := range e.Fields[1:] {
		msg += "; " + f.Message
	}
	return msg
}

// NewError builds a validation error from field errors.
func NewError(fields ...FieldError) *Error {
	return &Error{Fields: fields}
}
