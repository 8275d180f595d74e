package storage

import "errors"

// Common errors returned by ObjectStore implementations.
var (
	// ErrEmptyKey is returned when an object has no key.
	ErrEmptyKey = errors.New("object key cannot be empty")

	// ErrPermissionDenied is returned when the store rejects the write
	// for authorization reasons.
	ErrPermissionDenied = errors.New("object store permission denied")

	// ErrStoreUnavailable is returned when the store cannot be reached
	// or the target bucket does not exist.
	ErrStoreUnavailable = errors.New("object store unavailable")
)
