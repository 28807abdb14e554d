package entities

import "time"

// Clock is the time source used for staleness decisions.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// NewSystemClock creates the production Clock.
func NewSystemClock() Clock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time { return time.Now() }
