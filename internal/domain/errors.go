package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidFormat is returned when request data cannot be decoded into
	// the shape of a record.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidID is returned when a record id is missing from a request.
	ErrInvalidID = errors.New("invalid ID")
)
