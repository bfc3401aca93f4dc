package engine

import "time"

// TimeProvider abstracts the tick time source
// Production code uses MonotonicTimeProvider; tests substitute
// MockTimeProvider to drive animations deterministically
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides real system time with monotonic readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
