package errors

import "errors"

var (
	ErrNotFound        = errors.New("bookmark target not found")
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrTransient       = errors.New("backend temporarily unavailable")
)
