package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/eagroute/internal/app"
)

func (c *CLI) newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Show the live fleet dashboard",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")
			once, _ := cmd.Flags().GetBool("once")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Dashboard(cmd.Context(), app.DashboardOptions{
				OutputMode: outputMode,
				Once:       once,
			})
		},
	}
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	cmd.Flags().Bool("once", false, "Print a single frame after the first load and exit")
	return cmd
}
