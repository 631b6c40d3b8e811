/*
Package relay provides a client-side metrics relay: application code records
counters and timers in memory and the relay serializes each into a JSON
record sent as a single best-effort UDP datagram to a local metrics agent.

Transmission is fire-and-forget. There are no delivery guarantees, retries,
or acknowledgments; lost metrics are considered acceptable.

	r, err := relay.New(relay.Config{Service: "my-service"})
	if err != nil {
		// handle
	}
	defer r.Close()

	r.Inc("requests")

	t, _ := r.Timer("request-duration", nil)
	_ = t.Time(func() error {
		// measured work
		return nil
	})

	if err := r.Flush(); err != nil {
		// partial failures, combined; the batch was still processed
	}
*/
package relay
