package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable is returned when the store cannot be opened,
	// read, or written. Callers surface it without retrying; in-memory
	// state is left unchanged.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
