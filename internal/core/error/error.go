package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// InvalidInputMessage is returned when a request carries no usable query text.
	InvalidInputMessage = "query must not be empty"
	// ToolArgumentMissingMessage is returned when the model requested the order
	// lookup without supplying the order identifier.
	ToolArgumentMissingMessage = "the assistant could not determine which order to look up"
	// UpstreamUnavailableMessage describes generative service failures.
	UpstreamUnavailableMessage = "the assistant is temporarily unavailable, please try again later"
)

// Sentinel error kinds. Callers match them with errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrToolArgumentMissing = errors.New("tool argument missing")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Kind    error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Is reports whether the target matches the error kind, the underlying error,
// or the AppError itself.
func (e *AppError) Is(target error) bool {
	if e.Kind != nil && target == e.Kind {
		return true
	}
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return errors.As(e.Err, target)
}

// InvalidInput reports an empty or whitespace-only query. No downstream
// component runs when this is returned.
func InvalidInput() *AppError {
	return &AppError{
		Kind:    ErrInvalidInput,
		Status:  http.StatusBadRequest,
		Message: InvalidInputMessage,
	}
}

// ToolArgumentMissing reports that the model issued a tool call without the
// required argument. The request fails terminally; no guessed identifier is
// ever substituted.
func ToolArgumentMissing(tool string) *AppError {
	return &AppError{
		Err:     fmt.Errorf("tool %q called without required argument", tool),
		Kind:    ErrToolArgumentMissing,
		Status:  http.StatusBadGateway,
		Message: ToolArgumentMissingMessage,
	}
}
