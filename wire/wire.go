package wire

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ffwd-project/relay/metric"
)

// TypeMetric is the record type carried by every datagram.
const TypeMetric = "metric"

// Message is the JSON record sent in each UDP datagram. The field names and
// shape are a fixed contract with the receiving agent and must not change.
type Message struct {
	Key        string            `json:"key"`
	Attributes map[string]string `json:"attributes"`
	Value      float64           `json:"value"`
	Type       string            `json:"type"`
	Tags       []string          `json:"tags"`
	Time       float64           `json:"time"`
}

// Encode serializes a metric into its wire message. Relay default attributes
// are merged under the metric's own attributes (metric wins on conflict), the
// metric key becomes the "what" attribute, and the wire key carries the
// emitting service name. A zero timestamp is stamped with the current time.
//
// Encode enforces no payload size limit; keeping the message under the
// practical UDP datagram ceiling is the caller's responsibility.
func Encode(m metric.Metric, defaults map[string]string) ([]byte, error) {
	attrs := make(map[string]string, len(defaults)+len(m.Attributes())+1)
	for k, v := range defaults {
		attrs[k] = v
	}
	attrs["what"] = m.Key()
	for k, v := range m.Attributes() {
		attrs[k] = v
	}

	tags := m.Tags()
	if tags == nil {
		tags = []string{}
	}

	ts := m.Timestamp()
	if ts == 0 {
		ts = float64(time.Now().UnixNano()) / float64(time.Second)
	}

	payload, err := json.Marshal(Message{
		Key:        m.Service(),
		Attributes: attrs,
		Value:      m.Value(),
		Type:       TypeMetric,
		Tags:       tags,
		Time:       ts,
	})
	if err != nil {
		return nil, fmt.Errorf("encode metric %q: %w", m.Key(), err)
	}

	return payload, nil
}
