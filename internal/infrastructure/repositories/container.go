package repositories

import (
	"github.com/rios0rios0/resorepo/internal/domain/entities"
	"github.com/rios0rios0/resorepo/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/resorepo/internal/infrastructure/repositories/gogit"
	"github.com/rios0rios0/resorepo/internal/infrastructure/repositories/ripgrep"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register host registry with all known shorthand hosts
	if err := container.Provide(func() *HostRegistry {
		reg := NewHostRegistry()
		reg.Register(entities.DefaultHost())
		reg.Register(entities.Host{Name: "gitlab", BaseURL: "https://gitlab.com"})
		reg.Register(entities.Host{Name: "codeberg", BaseURL: "https://codeberg.org"})
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(filesystem.NewCacheRepository); err != nil {
		return err
	}
	if err := container.Provide(gogit.NewVCSRepository); err != nil {
		return err
	}
	if err := container.Provide(ripgrep.NewSearchRepository); err != nil {
		return err
	}

	return nil
}
