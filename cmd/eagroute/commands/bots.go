package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/eagroute/internal/core/domain"
)

func (c *CLI) newBotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bots",
		Short: "Inspect and move bots",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bots, err := c.app.Bots(cmd.Context())
			if err != nil {
				return err
			}
			printBots(cmd.OutOrStdout(), bots)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a bot with its route and orders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseID(args[0])
			if err != nil {
				return err
			}
			detail, err := c.app.Bot(cmd.Context(), id)
			if err != nil {
				return err
			}
			printBotDetail(cmd.OutOrStdout(), &detail.Bot, &detail.Route, detail.Orders)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "move <id> <x> <y>",
		Short: "Move a bot to a grid cell",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseID(args[0])
			if err != nil {
				return err
			}
			to, err := domain.ParseCoord(args[1] + "," + args[2])
			if err != nil {
				return err
			}
			res, err := c.app.MoveBot(cmd.Context(), id, to)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (bot %d now at %s)\n", res.Message, id, res.NewPosition)
			return nil
		},
	})
	return cmd
}
