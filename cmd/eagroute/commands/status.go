package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show backend health and fleet statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Status(cmd.Context())
			if err != nil {
				return err
			}

			fleet := report.Stats.Fleet()
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "backend:  %s (%s, version %s)\n", report.BaseURL, report.Health.Status, report.Health.Version)
			_, _ = fmt.Fprintf(w, "map:      %d nodes, %d restaurants, %d houses, %d stations\n",
				report.Stats.Map.TotalNodes, report.Stats.Map.Restaurants, report.Stats.Map.Houses, report.Stats.Map.BotStations)
			_, _ = fmt.Fprintf(w, "fleet:    %d bots, %d active, %d available, %d maintenance\n",
				fleet.Total, fleet.Active, fleet.Available, fleet.Maintenance)
			_, _ = fmt.Fprintf(w, "orders:   %d pending, %d active, %d delivered\n",
				report.Stats.Orders.Pending, report.Stats.Orders.Active, report.Stats.Orders.Delivered)
			_, _ = fmt.Fprintf(w, "blocked:  %d segments\n", report.Blocked)
			return nil
		},
	}
}
