package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("opportunity not found")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrInvalidTransition = errors.New("invalid moderation transition")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrTransient         = errors.New("backend temporarily unavailable")
)

// FieldError names one offending field in a rejected payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports bad input shape/values. It is raised before any
// persistence call so a failed submission never touches the store.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for _, item := range e.Fields {
		names = append(names, item.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// AsValidation unwraps a *ValidationError when err carries one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
