package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/reflow/internal/cli/formatter"
	"github.com/alexanderramin/reflow/internal/scenario"
)

func newGenerateCmd(cliApp *App) *cobra.Command {
	var seed int64
	var centers, orders, windows int
	var save bool
	var out string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a seeded random scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			opts := scenario.DefaultGenerateOptions(seed)
			if cmd.Flags().Changed("centers") {
				opts.WorkCenters = centers
			}
			if cmd.Flags().Changed("orders") {
				opts.WorkOrders = orders
			}
			if cmd.Flags().Changed("windows") {
				opts.MaintenancePerCenter = windows
			}

			schema, err := cliApp.Scenarios.Generate(cmd.Context(), opts, save)
			if err != nil {
				return err
			}
			if out != "" {
				if err := schema.SaveFile(out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (seed %d): %d work centers, %d work orders\n",
				formatter.Bold(schema.Name), seed, len(schema.WorkCenters), len(schema.WorkOrders))
			if save {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Saved to scenario store."))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
	cmd.Flags().IntVar(&centers, "centers", 3, "Number of work centers")
	cmd.Flags().IntVar(&orders, "orders", 12, "Number of work orders")
	cmd.Flags().IntVar(&windows, "windows", 1, "Maintenance windows per center")
	cmd.Flags().BoolVar(&save, "save", false, "Save the scenario to the store")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the scenario to a JSON file")

	return cmd
}
