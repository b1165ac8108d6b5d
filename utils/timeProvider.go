package utils

import "time"

// TimeProvider wraps time.Now so that timestamps can be controlled in tests
type TimeProvider interface {
	Now() time.Time
}

func NewTimeProvider() TimeProvider {
	return &timeProvider{}
}

type timeProvider struct{}

// Now returns the current time truncated to milliseconds, the precision MongoDB stores dates with
func (*timeProvider) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
