package metric

import "github.com/benbjohnson/clock"

// CounterConfig configures a new Counter.
type CounterConfig struct {
	// Key identifies the metric. Required.
	Key string

	// Service is the emitting service name. Required.
	Service string

	// Attributes are metric-level attributes, merged over relay defaults at
	// encode time.
	Attributes map[string]string

	// Tags are emitted verbatim in the wire record.
	Tags []string

	// Value seeds the counter with an initial value. Defaults to 0.
	Value float64

	// Clock overrides the wall clock used for timestamps. Defaults to the
	// real clock.
	Clock clock.Clock
}

// Counter is an accumulating numeric metric. It is reset to zero by the relay
// after each successful flush, so consecutive flush cycles report deltas.
type Counter struct {
	key     string
	service string
	attrs   map[string]string
	tags    []string
	value   float64
	clk     clock.Clock
}

var _ Metric = (*Counter)(nil)

// NewCounter creates a Counter from the provided configuration.
func NewCounter(config CounterConfig) (*Counter, error) {
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

	attrs := make(map[string]string, len(config.Attributes))
	for k, v := range config.Attributes {
		attrs[k] = v
	}

	return &Counter{
		key:     config.Key,
		service: config.Service,
		attrs:   attrs,
		tags:    config.Tags,
		value:   config.Value,
		clk:     clk,
	}, nil
}

// Inc increments the counter by one.
func (c *Counter) Inc() { c.value++ }

// Add adds delta to the counter. Delta may be negative.
func (c *Counter) Add(delta float64) { c.value += delta }

// Reset sets the counter back to zero. The relay calls this after a
// successful send so the next cycle reports a fresh delta.
func (c *Counter) Reset() { c.value = 0 }

// Key returns the metric identifier.
func (c *Counter) Key() string { return c.key }

// Service returns the emitting service name.
func (c *Counter) Service() string { return c.service }

// Attributes returns the counter's own attributes.
func (c *Counter) Attributes() map[string]string { return c.attrs }

// Tags returns the counter's tags.
func (c *Counter) Tags() []string { return c.tags }

// Value returns the accumulated value.
func (c *Counter) Value() float64 { return c.value }

// Timestamp returns the current clock reading; counters are stamped at
// serialization time, not at increment time.
func (c *Counter) Timestamp() float64 { return epochSeconds(c.clk.Now()) }
