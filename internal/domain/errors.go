package domain

import "errors"

var (
	// ErrInvalidReading indicates a sample outside the converter range
	ErrInvalidReading = errors.New("reading outside converter range")

	// ErrReadingNotFound indicates requested reading doesn't exist
	ErrReadingNotFound = errors.New("reading not found")

	// ErrSensorUnavailable indicates sensor cannot be read
	ErrSensorUnavailable = errors.New("sensor unavailable")

	// ErrNotConnected indicates a transport was used before it was opened
	ErrNotConnected = errors.New("not connected")
)
