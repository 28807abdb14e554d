package commands

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
	"github.com/rios0rios0/resorepo/internal/domain/repositories"
)

// Checkout is the interface for the checkout command.
type Checkout interface {
	Execute(ctx context.Context, opts CheckoutOptions) (string, error)
}

// CheckoutOptions holds the inputs of a single checkout.
type CheckoutOptions struct {
	Reference string
	Branch    string        // optional branch, tag or revision
	CacheDir  string        // optional cache root override
	Host      entities.Host // host shorthand references are joined against
}

// CheckoutCommand resolves a repository reference to a ready checkout path,
// reusing the cached checkout while it is fresh and recloning it otherwise.
type CheckoutCommand struct {
	cache repositories.CacheRepository
	vcs   repositories.VCSRepository
}

// NewCheckoutCommand creates a new CheckoutCommand.
func NewCheckoutCommand(
	cache repositories.CacheRepository,
	vcs repositories.VCSRepository,
) *CheckoutCommand {
	return &CheckoutCommand{
		cache: cache,
		vcs:   vcs,
	}
}

// Execute returns the path of a checkout of opts.Reference, switched to opts.Branch if set.
func (it *CheckoutCommand) Execute(ctx context.Context, opts CheckoutOptions) (string, error) {
	host := opts.Host
	if host.BaseURL == "" {
		host = entities.DefaultHost()
	}

	url, err := entities.ResolveReference(opts.Reference, host)
	if err != nil {
		return "", err
	}
	id, err := entities.NewRepoIdentifier(url)
	if err != nil {
		return "", err
	}
	logger.Debugf("Resolved %q to %s (identifier %q)", opts.Reference, url, id)

	root, err := it.cache.EnsureRoot(opts.CacheDir)
	if err != nil {
		return "", err
	}
	config, err := it.cache.LoadOrInitConfig(root)
	if err != nil {
		return "", err
	}

	entryPath := root.EntryPath(id)
	fetchedAt, err := it.materialize(ctx, url, entryPath, config)
	if err != nil {
		return "", err
	}

	if opts.Branch != "" {
		if checkoutErr := it.vcs.CheckoutRef(ctx, entryPath, opts.Branch); checkoutErr != nil {
			return "", checkoutErr
		}
		logger.Infof("Switched %s to %q", id, opts.Branch)

		// switching refs touches the directory; keep the freshness of the last clone
		if stampErr := it.cache.Stamp(entryPath, fetchedAt); stampErr != nil {
			logger.Warnf("Failed to restore freshness of %s: %v", entryPath, stampErr)
		}
	}

	return entryPath, nil
}

// materialize reuses a fresh checkout or deletes and reclones a stale one.
// It returns the freshness time of the checkout at entryPath.
func (it *CheckoutCommand) materialize(
	ctx context.Context,
	url entities.CanonicalURL,
	entryPath string,
	config entities.CacheConfig,
) (time.Time, error) {
	entry, err := it.cache.Entry(entryPath)
	if err != nil {
		return time.Time{}, err
	}

	stale := entities.IsStale(entry, config.CacheTTLDays, it.cache.Now())
	if !stale && !it.vcs.IsCheckout(entryPath) {
		logger.Warnf("%s is not a checkout, recloning", entryPath)
		stale = true
	}

	if !stale {
		logger.Infof("Cache hit: reusing %s", entryPath)
		return entry.ModifiedAt, nil
	}

	if entry.Exists {
		logger.Infof("Cache entry %s is stale, recloning", entryPath)
		if removeErr := it.cache.RemoveEntry(entryPath); removeErr != nil {
			return time.Time{}, removeErr
		}
	} else {
		logger.Infof("Cache miss: cloning %s into %s", url, entryPath)
	}

	if cloneErr := it.vcs.Clone(ctx, url, entryPath); cloneErr != nil {
		if removeErr := it.cache.RemoveEntry(entryPath); removeErr != nil {
			logger.Warnf("Failed to clean up partial clone %s: %v", entryPath, removeErr)
		}
		return time.Time{}, cloneErr
	}

	fetchedAt := it.cache.Now()
	if stampErr := it.cache.Stamp(entryPath, fetchedAt); stampErr != nil {
		return time.Time{}, fmt.Errorf("%w: %w", entities.ErrCacheRootUnwritable, stampErr)
	}
	return fetchedAt, nil
}
