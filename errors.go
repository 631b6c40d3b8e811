package relay

import "errors"

var (
	// ErrNotCounter is returned when a counter operation targets a key
	// registered as a different metric kind.
	ErrNotCounter = errors.New("registered metric is not a counter")

	// ErrNotTimer is returned when Timer targets a key registered as a
	// different metric kind.
	ErrNotTimer = errors.New("registered metric is not a timer")
)
