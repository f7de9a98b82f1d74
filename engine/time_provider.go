package engine

import "time"

// TimeProvider supplies the loop's clock. Frame pacing and the injected Time
// component are measured against it, never against wall-clock arithmetic.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider is the production clock: real system time carrying
// Go's monotonic reading, so pacing is immune to wall-clock adjustments.
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the production time provider.
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading.
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
