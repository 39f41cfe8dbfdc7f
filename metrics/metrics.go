// Package metrics provides simple atomic counters for monitoring
// Accumulator operation volume, grounded on the same sync/atomic
// counter style used elsewhere in the pack rather than a metrics client
// library (see DESIGN.md).
package metrics

import "sync/atomic"

// Counter is a single monotonic counter, safe for concurrent use.
type Counter struct {
	v int64
}

// Add increments the counter by delta and returns the new value.
func (c *Counter) Add(delta int64) int64 {
	return atomic.AddInt64(&c.v, delta)
}

// Load returns the current value.
func (c *Counter) Load() int64 {
	return atomic.LoadInt64(&c.v)
}

// Counters groups the operation counters an Accumulator may be attached to
// (see Accumulator.WithMetrics).
type Counters struct {
	Adds           Counter
	Dels           Counter
	Proves         Counter
	Verifies       Counter
	VerifyFailures Counter
}

// NewCounters returns a fresh, zeroed Counters.
func NewCounters() *Counters {
	return &Counters{}
}
