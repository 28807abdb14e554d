package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/resorepo/internal/domain/entities"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0" //nolint:gochecknoglobals // build-time variable

func buildRootCommand(controller entities.Controller, exitCode *int) *cobra.Command {
	bind := controller.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:          bind.Use,
		Short:        bind.Short,
		Long:         bind.Long,
		Version:      version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				*exitCode = entities.ExitUsage
				return command.Help()
			}
			*exitCode = controller.Execute(command, args)
			return nil
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	controller.AddFlags(cmd)

	return cmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	exitCode := entities.ExitSuccess
	cobraRoot := buildRootCommand(injectSearchController(), &exitCode)

	if err := cobraRoot.Execute(); err != nil {
		logger.Errorf("Error executing 'resorepo': %s", err)
		os.Exit(entities.ExitUsage)
	}
	os.Exit(exitCode)
}
