package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/reflow/internal/scenario"
	"github.com/alexanderramin/reflow/internal/service"
)

// demoSeed makes the demo scenario reproducible across machines.
const demoSeed = 20250106

func newDemoCmd(cliApp *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a canned contended scenario end to end",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := scenario.DefaultGenerateOptions(demoSeed)
			schema := scenario.Generate(opts)

			resp, err := cliApp.Reflow.Run(cmd.Context(), service.RunRequest{Schema: schema})
			if err != nil {
				return err
			}

			printRun(cmd, resp)
			return nil
		},
	}
}
