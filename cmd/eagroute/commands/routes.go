package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/eagroute/internal/core/domain"
)

func (c *CLI) newRoutesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Plan and balance delivery routes",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "distance <x1,y1> <x2,y2>",
		Short: "Shortest path between two cells around blocked segments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := domain.ParseCoord(args[0])
			if err != nil {
				return err
			}
			to, err := domain.ParseCoord(args[1])
			if err != nil {
				return err
			}
			d, err := c.app.Distance(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			printDistance(cmd.OutOrStdout(), &d)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "optimize",
		Short: "Show the optimized route of every busy bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			routes, err := c.app.OptimizeRoutes(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(routes) == 0 {
				_, _ = fmt.Fprintln(w, "no active routes")
				return nil
			}
			for _, id := range slices.Sorted(maps.Keys(routes)) {
				r := routes[id]
				_, _ = fmt.Fprintf(w, "bot %d: %d stops, distance %d, about %ds\n",
					id, len(r.RoutePoints), r.TotalDistance, r.EstimatedTime)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "efficiency",
		Short: "Show per-bot delivery metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := c.app.Efficiency(cmd.Context())
			if err != nil {
				return err
			}
			printEfficiency(cmd.OutOrStdout(), entries)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rebalance",
		Short: "Reassign pending orders to the nearest idle bots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.Rebalance(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "reassigned %d orders, %d still pending\n", res.ReassignedOrders, res.PendingOrders)
			for _, a := range res.Assignments {
				_, _ = fmt.Fprintf(w, "  order #%d -> bot %d\n", a.OrderID, a.BotID)
			}
			return nil
		},
	})
	return cmd
}
