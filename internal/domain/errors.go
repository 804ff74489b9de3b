package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidMode is returned when a practice mode is neither "random"
	// nor a positive syllable count.
	ErrInvalidMode = fmt.Errorf("%w: invalid practice mode", ErrValidation)
)
