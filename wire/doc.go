/*
Package wire implements the JSON message format expected by the metrics
agent.

Each metric becomes one JSON object: the wire "key" carries the emitting
service, the metric key is folded into attributes as "what", and the record
always includes value, type ("metric"), tags (an empty array when unset), and
time in floating-point seconds since the Unix epoch. This shape is spoken by
an existing agent population and is treated as a fixed external contract.
*/
package wire
