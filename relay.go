package relay

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"

	"github.com/ffwd-project/relay/metric"
	"github.com/ffwd-project/relay/transport"
	"github.com/ffwd-project/relay/wire"
)

const (
	// DefaultHost is the agent address used when none is provided.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the agent UDP port used when none is provided.
	DefaultPort = 19000
)

// Config provides configuration options for relay initialization.
type Config struct {
	// Service is the emitting service name applied to every metric that does
	// not carry its own. Required.
	Service string

	// Host is the agent's address. If empty, DefaultHost is used.
	Host string

	// Port is the agent's UDP port. If zero, DefaultPort is used.
	Port int

	// DefaultAttributes are applied to every metric lacking that attribute in
	// its own set; metric-level attributes win on conflict.
	DefaultAttributes map[string]string

	// Sender overrides the UDP transport. When set, Host and Port are
	// ignored.
	Sender transport.Sender

	// Clock overrides the wall clock used for timers and timestamps.
	Clock clock.Clock
}

// MetricRelay holds a registry of named counters and timers and transmits
// each as a single best-effort UDP datagram on Flush or Emit.
//
// A relay is not safe for concurrent use; callers invoking it from multiple
// goroutines must provide their own synchronization.
type MetricRelay struct {
	service  string
	defaults map[string]string
	registry map[string]metric.Metric
	sender   transport.Sender
	clk      clock.Clock
}

// New creates a relay and opens its UDP socket. Opening the socket stores the
// agent's address without contacting it, so New does not block.
func New(config Config) (*MetricRelay, error) {
	if config.Service == "" {
		return nil, fmt.Errorf("relay: %w", metric.ErrServiceEmpty)
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.New()
	}

	sender := config.Sender
	if sender == nil {
		host := config.Host
		if host == "" {
			host = DefaultHost
		}
		port := config.Port
		if port == 0 {
			port = DefaultPort
		}

		var err error
		sender, err = transport.New(transport.Config{Host: host, Port: port})
		if err != nil {
			return nil, err
		}
	}

	defaults := make(map[string]string, len(config.DefaultAttributes))
	for k, v := range config.DefaultAttributes {
		defaults[k] = v
	}

	return &MetricRelay{
		service:  config.Service,
		defaults: defaults,
		registry: make(map[string]metric.Metric),
		sender:   sender,
		clk:      clk,
	}, nil
}

// Inc increments the counter registered under key by one, creating it first
// if the key has never been seen. Nothing is sent.
func (r *MetricRelay) Inc(key string) error { return r.Add(key, 1) }

// Add adds amount to the counter registered under key, creating it first if
// the key has never been seen. Amount may be negative. Nothing is sent.
func (r *MetricRelay) Add(key string, amount float64) error {
	m, ok := r.registry[key]
	if !ok {
		c, err := metric.NewCounter(metric.CounterConfig{
			Key:     key,
			Service: r.service,
			Clock:   r.clk,
		})
		if err != nil {
			return err
		}
		c.Add(amount)
		r.registry[key] = c
		return nil
	}

	c, ok := m.(*metric.Counter)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotCounter, key)
	}
	c.Add(amount)
	return nil
}

// SetCounter registers c under key, unconditionally replacing any prior
// entry. Any value accumulated under the prior entry is discarded.
func (r *MetricRelay) SetCounter(key string, c *metric.Counter) { r.registry[key] = c }

// SetTimer registers t under key, unconditionally replacing any prior entry.
func (r *MetricRelay) SetTimer(key string, t *metric.Timer) { r.registry[key] = t }

// Timer returns the timer registered under key, creating and registering one
// first if the key has never been seen. The timer is visible to Has before it
// fires. Attributes are only applied when the timer is created.
func (r *MetricRelay) Timer(key string, attributes map[string]string) (*metric.Timer, error) {
	if m, ok := r.registry[key]; ok {
		t, ok := m.(*metric.Timer)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotTimer, key)
		}
		return t, nil
	}

	t, err := metric.NewTimer(metric.TimerConfig{
		Key:        key,
		Service:    r.service,
		Attributes: attributes,
		Clock:      r.clk,
	})
	if err != nil {
		return nil, err
	}
	r.registry[key] = t
	return t, nil
}

// Emit synchronously sends a one-off metric with the given value, attributes,
// and tags. The metric is never stored in the registry. Unlike Flush, Emit
// has no batch to absorb a failure, so encode and send errors are returned to
// the caller.
func (r *MetricRelay) Emit(key string, value float64, attributes map[string]string, tags ...string) error {
	c, err := metric.NewCounter(metric.CounterConfig{
		Key:        key,
		Service:    r.service,
		Attributes: attributes,
		Tags:       tags,
		Value:      value,
		Clock:      r.clk,
	})
	if err != nil {
		return err
	}

	payload, err := wire.Encode(c, r.defaults)
	if err != nil {
		return err
	}

	return r.sender.Send(payload)
}

// Flush sends one datagram per registered metric and resets each counter
// whose send succeeded. Iteration order is unspecified. A failure for one
// metric never aborts the batch: the error is collected, the metric keeps its
// state, and iteration continues. The combined error is returned for the
// caller to log.
//
// Timers that have not completed a measurement are skipped; they stay
// registered and are sent on the first flush after they complete.
func (r *MetricRelay) Flush() error {
	var errs error
	for key, m := range r.registry {
		if t, ok := m.(*metric.Timer); ok && !t.Completed() {
			continue
		}

		payload, err := wire.Encode(m, r.defaults)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		if err := r.sender.Send(payload); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("flush %q: %w", key, err))
			continue
		}

		if c, ok := m.(*metric.Counter); ok {
			c.Reset()
		}
	}
	return errs
}

// Has reports whether key is present in the registry. It reflects only
// registration, never whether the metric has been flushed.
func (r *MetricRelay) Has(key string) bool {
	_, ok := r.registry[key]
	return ok
}

// Delete removes the registry entry for key, if any.
func (r *MetricRelay) Delete(key string) { delete(r.registry, key) }

// Close releases the relay's socket. The registry is left intact.
func (r *MetricRelay) Close() error { return r.sender.Close() }
