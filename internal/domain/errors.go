// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrUnknownCategory is returned when a category ID is not one of the
	// registered categories.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrEmptyTopic is returned when a topic string is empty.
	ErrEmptyTopic = errors.New("topic cannot be empty")

	// ErrEmptyOutputPath is returned when a generation result is created
	// without a storage path.
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
)
