package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering with an email that is already in use.
	ErrEmailTaken = errors.New("user with such email already exists")
	// ErrPasswordIncorrect is returned when login credentials do not match.
	ErrPasswordIncorrect = errors.New("password is incorrect")
	// ErrExerciseNotFound is returned when the referenced exercise does not exist.
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrExerciseNameTaken is returned when an exercise name is already in use.
	ErrExerciseNameTaken = errors.New("exercise with such name already exists")
	// ErrProgramNotFound is returned when the referenced program does not exist.
	ErrProgramNotFound = errors.New("program not found")
	// ErrTrackNotFound is returned when the referenced track does not exist.
	ErrTrackNotFound = errors.New("track not found")
	// ErrForbidden is returned when the caller is authenticated but not allowed
	// to act on the resource.
	ErrForbidden = errors.New("forbidden")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy is surfaced as a generic 500 with no internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_WITH_SUCH_EMAIL_ALREADY_EXISTS")
	case ErrPasswordIncorrect:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_IS_INCORRECT")
	case ErrExerciseNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "EXERCISE_NOT_FOUND")
	case ErrExerciseNameTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EXERCISE_WITH_SUCH_NAME_ALREADY_EXISTS")
	case ErrProgramNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROGRAM_NOT_FOUND")
	case ErrTrackNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRACK_NOT_FOUND")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
