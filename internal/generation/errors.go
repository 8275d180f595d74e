package generation

import "errors"

// Common errors returned by Generator implementations.
var (
	// ErrGenerationFailed is returned when generation fails for any general reason.
	ErrGenerationFailed = errors.New("failed to generate text")

	// ErrEmptyPrompt is returned when the prompt is empty.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrEmptyOutput is returned when the model produces no usable text.
	ErrEmptyOutput = errors.New("empty output from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve on retry.
	ErrTransientFailure = errors.New("transient error during text generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
