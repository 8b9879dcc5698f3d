package cli

import (
	"github.com/alexanderramin/reflow/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Reflow    service.ReflowService
	Scenarios service.ScenarioService

	// IsInteractive reports whether stdin is attached to a terminal;
	// interactive prompts are skipped when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "reflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "reflow",
		Short: "Manufacturing work-order schedule repair",
		Long: "reflow recomputes feasible start/end times for manufacturing work orders\n" +
			"subject to dependencies, work-center exclusivity, shift calendars, and\n" +
			"maintenance windows.",
	}

	root.AddCommand(
		newRunCmd(app),
		newAuditCmd(app),
		newGenerateCmd(app),
		newScenarioCmd(app),
		newDemoCmd(app),
	)

	return root
}
