package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/reflow/internal/app"
	"github.com/alexanderramin/reflow/internal/cli/formatter"
	"github.com/alexanderramin/reflow/internal/scenario"
	"github.com/alexanderramin/reflow/internal/service"
)

func newRunCmd(cliApp *App) *cobra.Command {
	var file string
	var record bool

	cmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "Reflow a scenario and print the corrected schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.RunRequest{RecordRun: record}
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
				name, err := pickScenario(cmd, cliApp)
				if err != nil {
					return err
				}
				req.ScenarioName = name
			}

			resp, err := cliApp.Reflow.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			printRun(cmd, resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Load the scenario from a JSON file instead of the store")
	cmd.Flags().BoolVar(&record, "record", false, "Record the run against the stored scenario")

	return cmd
}

func printRun(cmd *cobra.Command, resp *service.RunResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.FormatSchedule("Input Schedule", resp.Input))
	fmt.Fprintln(out, formatter.FormatSchedule("Corrected Schedule", app.ReflowInput{
		WorkOrders:  resp.Result.UpdatedWorkOrders,
		WorkCenters: resp.Input.WorkCenters,
	}))
	fmt.Fprintln(out, formatter.FormatChanges(resp.Result))
	fmt.Fprintln(out, formatter.FormatMetrics(resp.Result.Metrics))
	fmt.Fprintln(out, formatter.FormatAudit(resp.Audit))
	fmt.Fprintf(out, "  %s\n", formatter.Dim(resp.Result.Explanation))
}

// pickScenario prompts for a stored scenario when none was named on the
// command line. Requires an interactive terminal.
func pickScenario(cmd *cobra.Command, cliApp *App) (string, error) {
	if cliApp.IsInteractive == nil || !cliApp.IsInteractive() {
		return "", fmt.Errorf("no scenario given; pass a name or --file")
	}
	stored, err := cliApp.Scenarios.List(cmd.Context())
	if err != nil {
		return "", err
	}
	if len(stored) == 0 {
		return "", fmt.Errorf("scenario store is empty; try 'reflow generate --save'")
	}

	options := make([]huh.Option[string], 0, len(stored))
	for _, s := range stored {
		options = append(options, huh.NewOption(s.Name, s.Name))
	}

	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Scenario").
			Options(options...).
			Value(&name),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selecting scenario: %w", err)
	}
	return name, nil
}
