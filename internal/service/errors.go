package service

import (
	"errors"
	"fmt"

	"socialapi/pkg/pagination"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrInternalError  = errors.New("internal error")
)

// invalidRequest wraps a validation failure.
func invalidRequest(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
}

// isClientError reports errors caused by the request rather than the store.
func isClientError(err error) bool {
	return errors.Is(err, pagination.ErrConflictingCursors) ||
		errors.Is(err, pagination.ErrInvalidID) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrNotFound)
}
