/*
Package transport owns the UDP socket used to reach the metrics agent.

Sends are fire-and-forget: one datagram per fully encoded message, no
acknowledgment, no retries, no timeouts. The Sender interface is the seam the
relay uses, which lets tests substitute a mock without touching the network.
*/
package transport
