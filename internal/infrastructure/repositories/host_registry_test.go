//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
	"github.com/rios0rios0/resorepo/internal/infrastructure/repositories"
)

func TestHostRegistry(t *testing.T) {
	t.Parallel()

	newRegistry := func() *repositories.HostRegistry {
		reg := repositories.NewHostRegistry()
		reg.Register(entities.DefaultHost())
		reg.Register(entities.Host{Name: "gitlab", BaseURL: "https://gitlab.com"})
		return reg
	}

	t.Run("should return the default host for an empty name", func(t *testing.T) {
		t.Parallel()

		// when
		host, err := newRegistry().Get("")

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://github.com", host.BaseURL)
	})

	t.Run("should return a registered host by name", func(t *testing.T) {
		t.Parallel()

		// when
		host, err := newRegistry().Get("gitlab")

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.com", host.BaseURL)
	})

	t.Run("should return an error for an unknown host", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := newRegistry().Get("bitbucket")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown host")
	})

	t.Run("should list names in sorted order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"github", "gitlab"}, newRegistry().Names())
	})
}
