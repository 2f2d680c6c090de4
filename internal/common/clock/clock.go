package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/goldhollow/trophytable/internal/common/clock Clock

// Clock abstracts time so roll ids and timestamps are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock with the system time.
type SystemClock struct{}

// New returns a system-backed clock.
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time.
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
