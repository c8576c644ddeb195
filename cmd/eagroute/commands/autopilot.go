package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newAutopilotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autopilot",
		Short: "Control the backend's automatic bot movement",
	}
	toggle := func(running bool) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.SetAutoMovement(cmd.Context(), running)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		}
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Start automatic movement",
		Args:  cobra.NoArgs,
		RunE:  toggle(true),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop automatic movement",
		Args:  cobra.NoArgs,
		RunE:  toggle(false),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether automatic movement is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.AutoMovement(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !status.IsRunning {
				_, _ = fmt.Fprintln(w, "autopilot: stopped")
				return nil
			}
			_, _ = fmt.Fprintf(w, "autopilot: running, %d routes, every %gs\n", status.ActiveRoutes, status.MoveInterval)
			return nil
		},
	})
	return cmd
}
