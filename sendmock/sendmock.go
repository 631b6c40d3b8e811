package sendmock

import "errors"

var (
	// ErrSendFailed is returned when Fail is set without a custom error.
	ErrSendFailed = errors.New("send failed")

	// ErrClosed is returned when Send is called after Close.
	ErrClosed = errors.New("sender is closed")
)

// Mock simulates a datagram sender with validation and configurable failures.
type Mock struct {
	// PayloadValidator validates each payload passed to Send.
	PayloadValidator func([]byte) error

	// Error is the error to return if the mock is configured to fail.
	Error error

	// Fail indicates whether Send should return an error.
	Fail bool

	// Sent records every successfully sent payload, in order.
	Sent [][]byte

	// Closed reports whether Close has been called.
	Closed bool
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// PayloadValidator validates each payload passed to Send.
	PayloadValidator func([]byte) error

	// Error is the error to return if the mock is configured to fail.
	Error error

	// Fail indicates whether Send should return an error.
	Fail bool
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{
		PayloadValidator: config.PayloadValidator,
		Error:            config.Error,
		Fail:             config.Fail,
	}, nil
}

// Send simulates sending one datagram, validating the payload and recording
// it on success.
func (m *Mock) Send(payload []byte) error {
	if m.Closed {
		return ErrClosed
	}

	// Return user-defined error if Fail is set
	if m.Fail && m.Error != nil {
		return m.Error
	}

	// Return default error if Fail is set but no custom error is provided
	if m.Fail {
		return ErrSendFailed
	}

	// Validate payload using user-defined validator, if provided
	if m.PayloadValidator != nil {
		if err := m.PayloadValidator(payload); err != nil {
			return err
		}
	}

	// Record a copy so later mutation of the caller's buffer is harmless
	m.Sent = append(m.Sent, append([]byte(nil), payload...))

	return nil
}

// Close marks the mock as closed; subsequent sends fail.
func (m *Mock) Close() error {
	m.Closed = true
	return nil
}
