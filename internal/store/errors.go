package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrRunNotFound indicates that the requested generation run does not exist.
	ErrRunNotFound = errors.New("generation run not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored.
	ErrInvalidEntity = errors.New("invalid entity")
)
