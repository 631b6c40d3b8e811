/*
Package metric defines the metric data model shared by the relay: the Metric
interface plus its two concrete kinds, Counter and Timer.

Counters accumulate a numeric value across a flush cycle and are reset after
each successful send, so the agent receives deltas rather than running totals.
Timers measure the elapsed wall-clock duration of one operation in
nanoseconds; Time wraps an operation so the measurement completes on every
exit path.

Both kinds take an injectable clock so tests can control elapsed time and
timestamps without sleeping. Key and service are validated at construction and
immutable afterwards.
*/
package metric
