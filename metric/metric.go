package metric

import (
	"errors"
	"time"
)

var (
	// ErrKeyEmpty is returned when a metric is created without a key.
	ErrKeyEmpty = errors.New("metric key cannot be empty")

	// ErrServiceEmpty is returned when a metric is created without a service name.
	ErrServiceEmpty = errors.New("metric service cannot be empty")
)

// Metric is the capability set shared by Counter and Timer. The relay and the
// wire encoder only ever see this interface; dispatch on the concrete type
// happens in the relay's flush loop.
type Metric interface {
	// Key returns the metric identifier. Immutable after construction.
	Key() string

	// Service returns the emitting service name. Immutable after construction.
	Service() string

	// Attributes returns the metric's own attributes, before any merge with
	// relay-level defaults.
	Attributes() map[string]string

	// Tags returns the metric's tags, possibly nil.
	Tags() []string

	// Value returns the current numeric value.
	Value() float64

	// Timestamp returns the metric's time as floating-point seconds since the
	// Unix epoch.
	Timestamp() float64
}

// epochSeconds converts a wall-clock time into floating-point Unix seconds.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
