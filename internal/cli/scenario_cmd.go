package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/reflow/internal/cli/formatter"
	"github.com/alexanderramin/reflow/internal/scenario"
)

func newScenarioCmd(cliApp *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage stored scenarios",
	}

	cmd.AddCommand(
		newScenarioListCmd(cliApp),
		newScenarioImportCmd(cliApp),
		newScenarioRunsCmd(cliApp),
	)

	return cmd
}

func newScenarioListCmd(cliApp *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := cliApp.Scenarios.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(stored) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No scenarios stored."))
				return nil
			}

			headers := []string{"Name", "Created"}
			rows := make([][]string, 0, len(stored))
			for _, s := range stored {
				rows = append(rows, []string{s.Name, s.CreatedAt.Format("2006-01-02 15:04")})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newScenarioImportCmd(cliApp *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a scenario JSON file into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := scenario.LoadFile(args[0])
			if err != nil {
				return err
			}
			if err := cliApp.Scenarios.Import(cmd.Context(), schema); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", formatter.Bold(schema.Name))
			return nil
		},
	}
}

func newScenarioRunsCmd(cliApp *App) *cobra.Command {
	return &cobra.Command{
		Use:   "runs <scenario>",
		Short: "Show recorded reflow runs for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := cliApp.Scenarios.Runs(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No runs recorded."))
				return nil
			}

			headers := []string{"Ran At", "Rescheduled", "Unchanged", "Total Delay", "Audit"}
			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				rows = append(rows, []string{
					r.RanAt.Format("2006-01-02 15:04"),
					fmt.Sprintf("%d", r.Rescheduled),
					fmt.Sprintf("%d", r.Unchanged),
					fmt.Sprintf("%d min", r.TotalDelayMin),
					formatter.ValidIndicator(r.AuditValid),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}
}
