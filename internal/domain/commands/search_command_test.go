//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/resorepo/internal/domain/commands"
	"github.com/rios0rios0/resorepo/internal/domain/entities"
	"github.com/rios0rios0/resorepo/test/domain/commanddoubles"
	"github.com/rios0rios0/resorepo/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/resorepo/test/infrastructure/repositorydoubles"
)

func TestSearchCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should check out and then dispatch over the checkout path", func(t *testing.T) {
		t.Parallel()

		// given
		checkout := &commanddoubles.StubCheckoutCommand{Path: "/cache/Hello-World"}
		dispatch := &commanddoubles.StubDispatchCommand{}
		cmd := commands.NewSearchCommand(checkout, dispatch)
		opts := entitybuilders.NewSearchOptionsBuilder().WithBranch("main").BuildSearchOptions()

		// when
		code, err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, entitybuilders.NewSearchOptionsBuilder().WithBranch("main").BuildCheckoutOptions(), checkout.LastOpts)
		assert.Equal(t, []string{"TODO"}, dispatch.LastArgs)
		assert.Equal(t, "/cache/Hello-World", dispatch.LastTarget)
	})

	t.Run("should return NoSearchArgs before any checkout work", func(t *testing.T) {
		t.Parallel()

		// given
		checkout := &commanddoubles.StubCheckoutCommand{Path: "/cache/Hello-World"}
		dispatch := &commanddoubles.StubDispatchCommand{}
		cmd := commands.NewSearchCommand(checkout, dispatch)
		opts := entitybuilders.NewSearchOptionsBuilder().WithSearchArgs().BuildSearchOptions()

		// when
		code, err := cmd.Execute(context.Background(), opts)

		// then
		require.ErrorIs(t, err, entities.ErrNoSearchArgs)
		assert.Equal(t, entities.ExitNoSearchArgs, code)
		assert.Zero(t, checkout.ExecuteCallCount)
		assert.Zero(t, dispatch.ExecuteCallCount)
	})

	t.Run("should not dispatch when the checkout fails", func(t *testing.T) {
		t.Parallel()

		// given
		checkout := &commanddoubles.StubCheckoutCommand{
			ExecuteErr: fmt.Errorf("%w: network unreachable", entities.ErrCloneFailed),
		}
		dispatch := &commanddoubles.StubDispatchCommand{}
		cmd := commands.NewSearchCommand(checkout, dispatch)

		// when
		code, err := cmd.Execute(context.Background(), entitybuilders.NewSearchOptionsBuilder().BuildSearchOptions())

		// then
		require.ErrorIs(t, err, entities.ErrCloneFailed)
		assert.Equal(t, entities.ExitCloneFailed, code)
		assert.Zero(t, dispatch.ExecuteCallCount)
	})

	t.Run("should propagate the search tool exit code", func(t *testing.T) {
		t.Parallel()

		// given
		checkout := &commanddoubles.StubCheckoutCommand{Path: "/cache/Hello-World"}
		dispatch := &commanddoubles.StubDispatchCommand{ExitCode: 2}
		cmd := commands.NewSearchCommand(checkout, dispatch)

		// when
		code, err := cmd.Execute(context.Background(), entitybuilders.NewSearchOptionsBuilder().BuildSearchOptions())

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, code)
	})
}

func TestSearchScenarios(t *testing.T) {
	t.Parallel()

	newFlow := func(t *testing.T) (*commands.SearchCommand, *checkoutFixture, *doubles.SpySearchRepository) {
		t.Helper()
		f := newCheckoutFixture(t)
		search := &doubles.SpySearchRepository{}
		return commands.NewSearchCommand(f.command, commands.NewDispatchCommand(search)), f, search
	}

	t.Run("should clone on a miss and search the checkout", func(t *testing.T) {
		t.Parallel()

		// given
		cmd, f, search := newFlow(t)
		opts := f.options().WithReference("octocat/Hello-World").WithSearchArgs("TODO").BuildSearchOptions()

		// when
		code, err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		require.Len(t, f.vcs.CloneCalls, 1)
		assert.Equal(t, "https://github.com/octocat/Hello-World", f.vcs.CloneCalls[0].URL)
		require.Len(t, search.RunCalls, 1)
		assert.Equal(t, []string{"TODO", filepath.Join(f.cacheDir, "Hello-World")}, search.RunCalls[0])
	})

	t.Run("should reuse the checkout on a second run within the TTL", func(t *testing.T) {
		t.Parallel()

		// given
		cmd, f, search := newFlow(t)
		opts := f.options().BuildSearchOptions()
		_, err := cmd.Execute(context.Background(), opts)
		require.NoError(t, err)

		// when
		_, err = cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.Len(t, f.vcs.CloneCalls, 1)
		require.Len(t, search.RunCalls, 2)
		assert.Equal(t, search.RunCalls[0], search.RunCalls[1])
	})

	t.Run("should fail on zero search arguments before cloning", func(t *testing.T) {
		t.Parallel()

		// given
		cmd, f, search := newFlow(t)
		opts := f.options().WithSearchArgs().BuildSearchOptions()

		// when
		_, err := cmd.Execute(context.Background(), opts)

		// then
		require.ErrorIs(t, err, entities.ErrNoSearchArgs)
		assert.Empty(t, f.vcs.CloneCalls)
		assert.Empty(t, search.RunCalls)
		assert.NoDirExists(t, f.cacheDir)
	})
}
