package controllers

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/resorepo/internal/domain/commands"
	"github.com/rios0rios0/resorepo/internal/domain/entities"
	infraRepos "github.com/rios0rios0/resorepo/internal/infrastructure/repositories"
)

// SearchController handles the root command: resorepo <repo-reference> <search-args>...
type SearchController struct {
	command commands.Search
	hosts   *infraRepos.HostRegistry
}

// NewSearchController creates a new SearchController.
func NewSearchController(command commands.Search, hosts *infraRepos.HostRegistry) *SearchController {
	return &SearchController{
		command: command,
		hosts:   hosts,
	}
}

// GetBind returns the Cobra command metadata for the search controller.
func (it *SearchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "resorepo [flags] <repo-reference> <search-args>...",
		Short: "Search a remote repository with ripgrep",
		Long: `Clone a remote repository into a local cache (or reuse a fresh cached
checkout) and run ripgrep over it. The exit code mirrors ripgrep's.

The repository reference is either an absolute URL or an owner/name
shorthand joined against the selected host (github by default).
Everything after the reference is passed to ripgrep verbatim, so flags
meant for resorepo must come before it.

Checkouts live in ~/.resorepo; how long they are reused is set by
cache_ttl_days in ~/.resorepo/resorepo_config.yaml (0 reclones every run).

Examples:
  resorepo octocat/Hello-World TODO
  resorepo --branch v1.2.0 https://gitlab.com/group/project -i fixme`,
	}
}

// AddFlags adds the search-specific flags to the given Cobra command.
func (it *SearchController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("branch", "b", "", "Branch or tag to check out")
	cmd.Flags().String("cache-dir", "", "Cache root (default: ~/.resorepo)")
	cmd.Flags().String("host", entities.DefaultHostName,
		"Host for owner/name shorthands ("+strings.Join(it.hosts.Names(), ", ")+")")

	// forward everything after the repository reference to the search tool
	cmd.Flags().SetInterspersed(false)
}

// Execute runs one invocation and returns the process exit code.
func (it *SearchController) Execute(cmd *cobra.Command, args []string) int {
	ctx := context.Background()

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	branch, _ := cmd.Flags().GetString("branch")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	hostName, _ := cmd.Flags().GetString("host")

	host, err := it.hosts.Get(hostName)
	if err != nil {
		logger.Errorf("Invalid --host: %v", err)
		return entities.ExitUsage
	}

	opts := commands.SearchOptions{
		Reference:  args[0],
		Branch:     branch,
		CacheDir:   cacheDir,
		Host:       host,
		SearchArgs: args[1:],
	}

	code, err := it.command.Execute(ctx, opts)
	if err != nil {
		logger.Errorf("resorepo failed: %v", err)
	}
	return code
}
