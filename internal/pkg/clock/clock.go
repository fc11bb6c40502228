// Package clock abstracts wall-clock time so the scheduling code's notion of
// "today" and "now" is injectable in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Today formats the clock's current civil date the way the store and the
// schedule keep dates.
func Today(c Clock) string {
	return c.Now().Format("2006-01-02")
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a fixed instant until moved with Set or Add.
type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
