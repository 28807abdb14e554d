package repositories

import (
	"time"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
)

// CacheRepository owns the cache root on disk and answers whether a checkout
// can be reused. It keeps no in-memory state between calls; every answer is
// read from disk.
type CacheRepository interface {
	// EnsureRoot creates the cache root if missing. An empty dir selects the default location.
	EnsureRoot(dir string) (entities.CacheRoot, error)

	// LoadOrInitConfig reads the config file under the root, writing the default one if absent.
	LoadOrInitConfig(root entities.CacheRoot) (entities.CacheConfig, error)

	// Entry reports the on-disk state of a checkout directory.
	Entry(path string) (entities.CheckoutEntry, error)

	// IsStale reports whether the entry must be recreated under the given TTL.
	IsStale(path string, ttlDays int) bool

	// RemoveEntry deletes a checkout directory and everything below it.
	RemoveEntry(path string) error

	// Stamp records the freshness time of a checkout directory.
	Stamp(path string, at time.Time) error

	// Now returns the current time of the store's clock.
	Now() time.Time
}
