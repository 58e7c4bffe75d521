package storage

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyID       = errors.New("record id must be set")
	ErrDuplicateID   = errors.New("record id already exists")
	ErrUnknownField  = errors.New("field is not stored in this collection")
	ErrBadFieldValue = errors.New("unexpected value type for field")
)

// NewID returns a time-ordered id for a new record.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
