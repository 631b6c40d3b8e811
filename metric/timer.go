package metric

import (
	"time"

	"github.com/benbjohnson/clock"
)

// TimerConfig configures a new Timer.
type TimerConfig struct {
	// Key identifies the metric. Required.
	Key string

	// Service is the emitting service name. Required.
	Service string

	// Attributes are metric-level attributes. The "unit" attribute defaults
	// to "ns" and may be overridden here.
	Attributes map[string]string

	// Tags are emitted verbatim in the wire record.
	Tags []string

	// Clock overrides the wall clock used to measure elapsed time. Defaults
	// to the real clock.
	Clock clock.Clock
}

// Timer measures the elapsed wall-clock duration of an operation in
// nanoseconds. Its value is undefined until Stop has been called; restarting
// recomputes the measurement from scratch rather than accumulating.
type Timer struct {
	key       string
	service   string
	attrs     map[string]string
	tags      []string
	clk       clock.Clock
	start     time.Time
	end       time.Time
	value     float64
	completed bool
}

var _ Metric = (*Timer)(nil)

// NewTimer creates a Timer from the provided configuration. The timer is not
// started.
func NewTimer(config TimerConfig) (*Timer, error) {
	if config.Key == "" {
		return nil, ErrKeyEmpty
	}
	if config.Service == "" {
		return nil, ErrServiceEmpty
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.New()
	}

	attrs := make(map[string]string, len(config.Attributes)+1)
	attrs["unit"] = "ns"
	for k, v := range config.Attributes {
		attrs[k] = v
	}

	return &Timer{
		key:     config.Key,
		service: config.Service,
		attrs:   attrs,
		tags:    config.Tags,
		clk:     clk,
	}, nil
}

// Start records the beginning of the measured operation and discards any
// previous measurement.
func (t *Timer) Start() {
	t.start = t.clk.Now()
	t.value = 0
	t.completed = false
}

// Stop records the end of the measured operation and sets the timer's value
// to the elapsed nanoseconds since Start.
func (t *Timer) Stop() {
	t.end = t.clk.Now()
	t.value = float64(t.end.Sub(t.start))
	t.completed = true
}

// Time runs fn between Start and Stop. Stop is deferred, so the measurement
// completes on every exit path, including panics and early errors.
func (t *Timer) Time(fn func() error) error {
	t.Start()
	defer t.Stop()
	return fn()
}

// Completed reports whether the timer has a usable measurement.
func (t *Timer) Completed() bool { return t.completed }

// Key returns the metric identifier.
func (t *Timer) Key() string { return t.key }

// Service returns the emitting service name.
func (t *Timer) Service() string { return t.service }

// Attributes returns the timer's own attributes, including its unit.
func (t *Timer) Attributes() map[string]string { return t.attrs }

// Tags returns the timer's tags.
func (t *Timer) Tags() []string { return t.tags }

// Value returns the elapsed nanoseconds of the last completed measurement.
func (t *Timer) Value() float64 { return t.value }

// Timestamp returns the completion time of the last measurement, or the
// current clock reading if the timer has not completed.
func (t *Timer) Timestamp() float64 {
	if t.completed {
		return epochSeconds(t.end)
	}
	return epochSeconds(t.clk.Now())
}
