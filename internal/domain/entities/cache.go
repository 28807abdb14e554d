package entities

import (
	"math"
	"path/filepath"
	"time"
)

const (
	// CacheDirName is the name of the cache root under the user's home directory.
	CacheDirName = ".resorepo"
	// ConfigFileName is the name of the config file inside the cache root.
	ConfigFileName = "resorepo_config.yaml"
	// DefaultCacheTTLDays is written to a freshly created config file.
	DefaultCacheTTLDays = 7

	day = 24 * time.Hour

	// maxTTLDays is the largest TTL expressible as a time.Duration.
	maxTTLDays = math.MaxInt64 / int64(day)
)

// CacheRoot is the directory holding the config file and one checkout per repository.
type CacheRoot struct {
	Path string
}

// ConfigPath returns the location of the config file inside the root.
func (r CacheRoot) ConfigPath() string {
	return filepath.Join(r.Path, ConfigFileName)
}

// EntryPath returns the checkout directory for the given identifier.
func (r CacheRoot) EntryPath(id RepoIdentifier) string {
	return filepath.Join(r.Path, string(id))
}

// CacheConfig is the persisted, user-editable cache configuration.
type CacheConfig struct {
	CacheTTLDays int `yaml:"cache_ttl_days"`
}

// DefaultCacheConfig returns the config written when none exists yet.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{CacheTTLDays: DefaultCacheTTLDays}
}

// CheckoutEntry describes the on-disk state of a checkout directory.
type CheckoutEntry struct {
	Path       string
	Exists     bool
	ModifiedAt time.Time // zero when the entry has no recorded modification time
}

// IsStale reports whether the entry must be (re)created instead of reused.
// A TTL of zero always refreshes; missing entries and entries without a
// modification time are infinitely stale. A TTL too large for a time.Duration
// never expires.
func IsStale(entry CheckoutEntry, ttlDays int, now time.Time) bool {
	if ttlDays <= 0 || !entry.Exists || entry.ModifiedAt.IsZero() {
		return true
	}
	if int64(ttlDays) > maxTTLDays {
		return false
	}
	return now.Sub(entry.ModifiedAt) > time.Duration(ttlDays)*day
}
