//go:build integration || unit || test

package entitydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
)

// FakeClock is a manually advanced entities.Clock.
type FakeClock struct {
	Current time.Time
}

var _ entities.Clock = (*FakeClock)(nil)

// NewFakeClock creates a clock frozen at the given time.
func NewFakeClock(at time.Time) *FakeClock {
	return &FakeClock{Current: at}
}

func (c *FakeClock) Now() time.Time { return c.Current }

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}
