package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
	"github.com/rios0rios0/resorepo/internal/domain/repositories"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// CacheRepository implements repositories.CacheRepository on the local filesystem.
// Entry freshness is the modification time of the checkout directory.
type CacheRepository struct {
	clock   entities.Clock
	homeDir func() (string, error)
}

// NewCacheRepository creates a cache store rooted under the user's home directory by default.
func NewCacheRepository(clock entities.Clock) repositories.CacheRepository {
	return &CacheRepository{
		clock:   clock,
		homeDir: os.UserHomeDir,
	}
}

// EnsureRoot creates the cache root if it does not exist yet.
func (r *CacheRepository) EnsureRoot(dir string) (entities.CacheRoot, error) {
	if dir == "" {
		home, err := r.homeDir()
		if err != nil {
			return entities.CacheRoot{}, fmt.Errorf(
				"%w: could not determine home directory: %w", entities.ErrCacheRootUnwritable, err,
			)
		}
		dir = filepath.Join(home, entities.CacheDirName)
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return entities.CacheRoot{}, fmt.Errorf("%w: %w", entities.ErrCacheRootUnwritable, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return entities.CacheRoot{}, fmt.Errorf("%w: %w", entities.ErrCacheRootUnwritable, err)
	}
	if !info.IsDir() {
		return entities.CacheRoot{}, fmt.Errorf(
			"%w: %s is not a directory", entities.ErrCacheRootUnwritable, dir,
		)
	}

	logger.Debugf("Using cache root %s", dir)
	return entities.CacheRoot{Path: dir}, nil
}

// LoadOrInitConfig reads the config file, writing the default config first if absent.
// Once the file exists it is the source of truth; a file that does not decode is an error.
func (r *CacheRepository) LoadOrInitConfig(root entities.CacheRoot) (entities.CacheConfig, error) {
	path := root.ConfigPath()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return writeDefaultConfig(path)
	}
	if err != nil {
		return entities.CacheConfig{}, fmt.Errorf(
			"%w: failed to read config file %q: %w", entities.ErrCacheRootUnwritable, path, err,
		)
	}

	return decodeConfig(path, data)
}

// Entry stats the checkout directory at path.
func (r *CacheRepository) Entry(path string) (entities.CheckoutEntry, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return entities.CheckoutEntry{Path: path}, nil
	}
	if err != nil {
		return entities.CheckoutEntry{}, fmt.Errorf("%w: %w", entities.ErrCacheRootUnwritable, err)
	}
	return entities.CheckoutEntry{
		Path:       path,
		Exists:     true,
		ModifiedAt: info.ModTime(),
	}, nil
}

// IsStale reports whether the checkout at path must be recreated.
// Entries that cannot be inspected are stale.
func (r *CacheRepository) IsStale(path string, ttlDays int) bool {
	entry, err := r.Entry(path)
	if err != nil {
		logger.Debugf("Treating %s as stale: %v", path, err)
		return true
	}
	return entities.IsStale(entry, ttlDays, r.clock.Now())
}

// RemoveEntry deletes the checkout directory. Missing entries are not an error.
func (r *CacheRepository) RemoveEntry(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("%w: failed to remove %s: %w", entities.ErrCacheRootUnwritable, path, err)
	}
	return nil
}

// Stamp sets the modification time of the checkout directory.
func (r *CacheRepository) Stamp(path string, at time.Time) error {
	return os.Chtimes(path, at, at)
}

// Now returns the current time of the injected clock.
func (r *CacheRepository) Now() time.Time {
	return r.clock.Now()
}

func writeDefaultConfig(path string) (entities.CacheConfig, error) {
	config := entities.DefaultCacheConfig()

	data, err := yaml.Marshal(&config)
	if err != nil {
		return entities.CacheConfig{}, fmt.Errorf("failed to serialize default config: %w", err)
	}
	if writeErr := os.WriteFile(path, data, filePerm); writeErr != nil {
		return entities.CacheConfig{}, fmt.Errorf(
			"%w: failed to write default config %q: %w", entities.ErrCacheRootUnwritable, path, writeErr,
		)
	}

	logger.Infof("Created default config %s (cache_ttl_days: %d)", path, config.CacheTTLDays)
	return config, nil
}

// persistedConfig mirrors entities.CacheConfig with a pointer so a missing key is detectable.
type persistedConfig struct {
	CacheTTLDays *int `yaml:"cache_ttl_days"`
}

func decodeConfig(path string, data []byte) (entities.CacheConfig, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var persisted persistedConfig
	if err := decoder.Decode(&persisted); err != nil {
		if errors.Is(err, io.EOF) {
			return entities.CacheConfig{}, fmt.Errorf("%w: %q is empty", entities.ErrConfigCorrupt, path)
		}
		return entities.CacheConfig{}, fmt.Errorf(
			"%w: could not deserialize %q, make sure it is valid: %w", entities.ErrConfigCorrupt, path, err,
		)
	}

	if persisted.CacheTTLDays == nil {
		return entities.CacheConfig{}, fmt.Errorf(
			"%w: %q is missing cache_ttl_days", entities.ErrConfigCorrupt, path,
		)
	}
	if *persisted.CacheTTLDays < 0 {
		return entities.CacheConfig{}, fmt.Errorf(
			"%w: cache_ttl_days must not be negative, got %d", entities.ErrConfigCorrupt, *persisted.CacheTTLDays,
		)
	}

	return entities.CacheConfig{CacheTTLDays: *persisted.CacheTTLDays}, nil
}
