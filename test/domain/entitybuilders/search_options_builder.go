//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/resorepo/internal/domain/commands"
	"github.com/rios0rios0/resorepo/internal/domain/entities"
)

// SearchOptionsBuilder helps create invocation options with a fluent interface.
type SearchOptionsBuilder struct {
	*testkit.BaseBuilder
	reference  string
	branch     string
	cacheDir   string
	host       entities.Host
	searchArgs []string
}

// NewSearchOptionsBuilder creates a builder searching octocat/Hello-World for "TODO".
func NewSearchOptionsBuilder() *SearchOptionsBuilder {
	return &SearchOptionsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		reference:   "octocat/Hello-World",
		host:        entities.DefaultHost(),
		searchArgs:  []string{"TODO"},
	}
}

// WithReference sets the repository reference.
func (b *SearchOptionsBuilder) WithReference(reference string) *SearchOptionsBuilder {
	b.reference = reference
	return b
}

// WithBranch sets the branch or tag to check out.
func (b *SearchOptionsBuilder) WithBranch(branch string) *SearchOptionsBuilder {
	b.branch = branch
	return b
}

// WithCacheDir sets the cache root override.
func (b *SearchOptionsBuilder) WithCacheDir(dir string) *SearchOptionsBuilder {
	b.cacheDir = dir
	return b
}

// WithHost sets the shorthand host.
func (b *SearchOptionsBuilder) WithHost(host entities.Host) *SearchOptionsBuilder {
	b.host = host
	return b
}

// WithSearchArgs sets the arguments forwarded to the search tool.
func (b *SearchOptionsBuilder) WithSearchArgs(args ...string) *SearchOptionsBuilder {
	b.searchArgs = args
	return b
}

// Build creates the options (satisfies testkit.Builder interface).
func (b *SearchOptionsBuilder) Build() interface{} {
	return b.BuildSearchOptions()
}

// BuildSearchOptions creates the options with a concrete return type.
func (b *SearchOptionsBuilder) BuildSearchOptions() commands.SearchOptions {
	return commands.SearchOptions{
		Reference:  b.reference,
		Branch:     b.branch,
		CacheDir:   b.cacheDir,
		Host:       b.host,
		SearchArgs: append([]string(nil), b.searchArgs...),
	}
}

// BuildCheckoutOptions creates the checkout part of the options.
func (b *SearchOptionsBuilder) BuildCheckoutOptions() commands.CheckoutOptions {
	return commands.CheckoutOptions{
		Reference: b.reference,
		Branch:    b.branch,
		CacheDir:  b.cacheDir,
		Host:      b.host,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SearchOptionsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.reference = "octocat/Hello-World"
	b.branch = ""
	b.cacheDir = ""
	b.host = entities.DefaultHost()
	b.searchArgs = []string{"TODO"}
	return b
}

// Clone creates a deep copy of the SearchOptionsBuilder.
func (b *SearchOptionsBuilder) Clone() testkit.Builder {
	return &SearchOptionsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		reference:   b.reference,
		branch:      b.branch,
		cacheDir:    b.cacheDir,
		host:        b.host,
		searchArgs:  append([]string(nil), b.searchArgs...),
	}
}
