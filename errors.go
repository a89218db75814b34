package vector

import "errors"

// Package-specific errors
var (
	// ErrOutOfRange is returned when a position argument falls outside the live elements
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrUnderflow is returned when removing from an empty vector
	ErrUnderflow = errors.New("vector: underflow")
)
