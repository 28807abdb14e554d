//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
)

//nolint:gochecknoglobals // shared reference time for builders
var referenceTime = time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

// CheckoutEntryBuilder helps create test checkout entries with a fluent interface.
type CheckoutEntryBuilder struct {
	*testkit.BaseBuilder
	path       string
	exists     bool
	modifiedAt time.Time
}

// NewCheckoutEntryBuilder creates a builder for an existing entry modified at a fixed reference time.
func NewCheckoutEntryBuilder() *CheckoutEntryBuilder {
	return &CheckoutEntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        "/cache/Hello-World",
		exists:      true,
		modifiedAt:  referenceTime,
	}
}

// ReferenceTime returns the default modification time of built entries.
func ReferenceTime() time.Time {
	return referenceTime
}

// WithPath sets the entry path.
func (b *CheckoutEntryBuilder) WithPath(path string) *CheckoutEntryBuilder {
	b.path = path
	return b
}

// Missing marks the entry as not present on disk.
func (b *CheckoutEntryBuilder) Missing() *CheckoutEntryBuilder {
	b.exists = false
	b.modifiedAt = time.Time{}
	return b
}

// WithModifiedAt sets the modification time.
func (b *CheckoutEntryBuilder) WithModifiedAt(at time.Time) *CheckoutEntryBuilder {
	b.modifiedAt = at
	return b
}

// WithoutModifiedAt clears the modification time of an existing entry.
func (b *CheckoutEntryBuilder) WithoutModifiedAt() *CheckoutEntryBuilder {
	b.modifiedAt = time.Time{}
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *CheckoutEntryBuilder) Build() interface{} {
	return b.BuildCheckoutEntry()
}

// BuildCheckoutEntry creates the entry with a concrete return type.
func (b *CheckoutEntryBuilder) BuildCheckoutEntry() entities.CheckoutEntry {
	return entities.CheckoutEntry{
		Path:       b.path,
		Exists:     b.exists,
		ModifiedAt: b.modifiedAt,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *CheckoutEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = "/cache/Hello-World"
	b.exists = true
	b.modifiedAt = referenceTime
	return b
}

// Clone creates a deep copy of the CheckoutEntryBuilder.
func (b *CheckoutEntryBuilder) Clone() testkit.Builder {
	return &CheckoutEntryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		exists:      b.exists,
		modifiedAt:  b.modifiedAt,
	}
}
