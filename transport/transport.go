package transport

import (
	"fmt"
	"net"
	"strconv"
)

// Sender delivers one fully encoded message per call. Implementations make no
// delivery guarantee; a nil return only means the local send succeeded.
type Sender interface {
	Send(payload []byte) error
	Close() error
}

// Config configures a UDP sender.
type Config struct {
	// Host is the agent's address.
	Host string

	// Port is the agent's UDP port.
	Port int
}

// UDP sends each payload as a single datagram over one connected UDP socket.
// The socket is created once and reused for every send.
type UDP struct {
	conn net.Conn
}

var _ Sender = (*UDP)(nil)

// New opens a UDP socket with the agent's address as its stored destination.
// UDP is connectionless, so this does not block or contact the agent.
func New(config Config) (*UDP, error) {
	addr := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial udp %s: %w", addr, err)
	}
	return &UDP{conn: conn}, nil
}

// Send transmits payload as one datagram. It reports only the local send
// result; UDP gives no signal about agent-side delivery.
func (u *UDP) Send(payload []byte) error {
	if _, err := u.conn.Write(payload); err != nil {
		return fmt.Errorf("send datagram: %w", err)
	}
	return nil
}

// Close releases the socket.
func (u *UDP) Close() error { return u.conn.Close() }
