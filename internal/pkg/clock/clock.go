package clock

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock reads wall time in UTC so stored timestamps serialize the same
// regardless of the host timezone.
type SystemClock struct{}

func NewSystemClock() Clock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

// Tick advances the clock by d and returns the new time.
func (c *MockClock) Tick(d time.Duration) time.Time {
	c.currentTime = c.currentTime.Add(d)
	return c.currentTime
}
