package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind holds the Cobra command metadata a controller is bound to.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller binds a use case to a Cobra command. Execute returns the process exit code.
type Controller interface {
	GetBind() ControllerBind
	AddFlags(cmd *cobra.Command)
	Execute(cmd *cobra.Command, args []string) int
}
