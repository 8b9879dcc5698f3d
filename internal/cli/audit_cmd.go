package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/reflow/internal/cli/formatter"
	"github.com/alexanderramin/reflow/internal/scenario"
	"github.com/alexanderramin/reflow/internal/service"
)

func newAuditCmd(cliApp *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "audit [scenario]",
		Short: "Check a schedule against all constraints without rescheduling",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.RunRequest{}
			switch {
			case file != "":
				schema, err := scenario.LoadFile(file)
				if err != nil {
					return err
				}
				req.Schema = schema
			case len(args) == 1:
				req.ScenarioName = args[0]
			default:
				return fmt.Errorf("no scenario given; pass a name or --file")
			}

			report, err := cliApp.Reflow.Audit(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAudit(*report))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Load the scenario from a JSON file instead of the store")

	return cmd
}
