package store

import "errors"

var (
	// ErrNotFound is returned when no active record matches the lookup.
	ErrNotFound = errors.New("registry: record not found")

	// ErrConflict is returned when a unique constraint is violated.
	ErrConflict = errors.New("registry: duplicate value for unique field")

	// ErrBadKey is returned when a secondary lookup key fails to parse.
	ErrBadKey = errors.New("registry: malformed lookup key")
)
