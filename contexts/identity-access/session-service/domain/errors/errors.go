package errors

import "errors"

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrNotFound        = errors.New("profile not found")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrTransient       = errors.New("backend temporarily unavailable")
)
