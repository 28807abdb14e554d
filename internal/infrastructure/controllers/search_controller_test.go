//go:build unit

package controllers_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
	"github.com/rios0rios0/resorepo/internal/infrastructure/controllers"
	infraRepos "github.com/rios0rios0/resorepo/internal/infrastructure/repositories"
	"github.com/rios0rios0/resorepo/test/domain/commanddoubles"
)

func newHostRegistry() *infraRepos.HostRegistry {
	reg := infraRepos.NewHostRegistry()
	reg.Register(entities.DefaultHost())
	reg.Register(entities.Host{Name: "gitlab", BaseURL: "https://gitlab.com"})
	return reg
}

// parse builds a command the way main does and returns it with its positional args.
func parse(t *testing.T, controller *controllers.SearchController, argv ...string) (*cobra.Command, []string) {
	t.Helper()

	//nolint:exhaustruct // test command
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "")
	controller.AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(argv))
	return cmd, cmd.Flags().Args()
}

func TestSearchControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should forward everything after the reference to the search tool", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSearchCommand{}
		controller := controllers.NewSearchController(stub, newHostRegistry())
		cmd, args := parse(t, controller, "--branch", "dev", "octocat/Hello-World", "-i", "--hidden", "todo")

		// when
		code := controller.Execute(cmd, args)

		// then
		assert.Equal(t, 0, code)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "octocat/Hello-World", stub.LastOpts.Reference)
		assert.Equal(t, "dev", stub.LastOpts.Branch)
		assert.Equal(t, []string{"-i", "--hidden", "todo"}, stub.LastOpts.SearchArgs)
		assert.Equal(t, entities.DefaultHost(), stub.LastOpts.Host)
	})

	t.Run("should pass the selected host and cache dir", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSearchCommand{}
		controller := controllers.NewSearchController(stub, newHostRegistry())
		cmd, args := parse(t, controller, "--host", "gitlab", "--cache-dir", "/tmp/cache", "group/project", "TODO")

		// when
		controller.Execute(cmd, args)

		// then
		assert.Equal(t, "https://gitlab.com", stub.LastOpts.Host.BaseURL)
		assert.Equal(t, "/tmp/cache", stub.LastOpts.CacheDir)
	})

	t.Run("should return the exit code of the invocation", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSearchCommand{ExitCode: entities.ExitNoSearchArgs, ExecuteErr: entities.ErrNoSearchArgs}
		controller := controllers.NewSearchController(stub, newHostRegistry())
		cmd, args := parse(t, controller, "octocat/Hello-World")

		// when
		code := controller.Execute(cmd, args)

		// then
		assert.Equal(t, entities.ExitNoSearchArgs, code)
		assert.Empty(t, stub.LastOpts.SearchArgs)
	})

	t.Run("should reject an unknown host without running", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSearchCommand{}
		controller := controllers.NewSearchController(stub, newHostRegistry())
		cmd, args := parse(t, controller, "--host", "nowhere", "octocat/Hello-World", "TODO")

		// when
		code := controller.Execute(cmd, args)

		// then
		assert.Equal(t, entities.ExitUsage, code)
		assert.Zero(t, stub.ExecuteCallCount)
	})
}
