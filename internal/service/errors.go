package service

import "errors"

// Common service errors.
var (
	// ErrNoTopics is returned when a batch is requested without topics.
	ErrNoTopics = errors.New("at least one topic is required")

	// ErrNoCategories is returned when a batch is requested without categories.
	ErrNoCategories = errors.New("at least one category is required")
)
