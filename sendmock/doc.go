/*
Package sendmock provides a friendly pretend agent for datagram sends.

It's designed for relay development and tests that want to validate exactly
what a component puts on the wire without a UDP socket or a real agent
listening. No real agents were harmed in the making of these tests.

Why use sendmock?

  - Inspect payloads: plug in a PayloadValidator to assert JSON contents.
  - Capture traffic: every successful payload is recorded in Sent, in order.
  - Script failures: simulate socket errors with Fail and a custom Error.

Quick start

	m, _ := sendmock.New(sendmock.Config{
	  PayloadValidator: func(p []byte) error {
	    // Unmarshal and assert fields here
	    return nil
	  },
	})

	// Inject into a relay under test
	err := m.Send([]byte(`{"type":"metric"}`))

Behavior

  - If Fail is true and Error is set, Send returns that error.
  - If Fail is true and Error is nil, Send returns ErrSendFailed.
  - Otherwise, Send runs PayloadValidator when provided; a validator error is
    returned as the send's error and the payload is not recorded.
  - After Close, every Send returns ErrClosed.

Tips

  - Use table-driven tests for different payload and failure cases.
  - Keep the validator small and focused: decode, assert, return.
  - Leave fields blank when you want a wildcard; sendmock only enforces what you set.
*/
package sendmock
