package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/eagroute/internal/core/domain"
)

func (c *CLI) newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List and manage orders",
	}
	cmd.AddCommand(c.newOrdersListCmd())
	cmd.AddCommand(c.newOrdersCreateCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "update <id> <status>",
		Short: "Set the status of an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseID(args[0])
			if err != nil {
				return err
			}
			status, err := domain.ParseOrderStatus(args[1])
			if err != nil {
				return err
			}
			order, err := c.app.UpdateOrderStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}
			printOrder(cmd.OutOrStdout(), &order)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseID(args[0])
			if err != nil {
				return err
			}
			msg, err := c.app.CancelOrder(cmd.Context(), id)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	})
	return cmd
}

func (c *CLI) newOrdersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var status domain.OrderStatus
			if raw, _ := cmd.Flags().GetString("status"); raw != "" {
				parsed, err := domain.ParseOrderStatus(raw)
				if err != nil {
					return err
				}
				status = parsed
			}
			orders, err := c.app.Orders(cmd.Context(), status)
			if err != nil {
				return err
			}
			printOrders(cmd.OutOrStdout(), orders)
			return nil
		},
	}
	cmd.Flags().StringP("status", "s", "", "Only show orders in this status")
	return cmd
}

func (c *CLI) newOrdersCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a new order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			phone, _ := cmd.Flags().GetString("phone")
			restaurant, _ := cmd.Flags().GetString("restaurant")
			pickupRaw, _ := cmd.Flags().GetString("pickup")
			deliveryRaw, _ := cmd.Flags().GetString("delivery")

			pickup, err := domain.ParseCoord(pickupRaw)
			if err != nil {
				return err
			}
			delivery, err := domain.ParseCoord(deliveryRaw)
			if err != nil {
				return err
			}

			req := domain.NewCreateOrderRequest(name, phone,
				domain.RestaurantType(strings.ToUpper(strings.TrimSpace(restaurant))), pickup, delivery)
			order, err := c.app.CreateOrder(cmd.Context(), req)
			if err != nil {
				return err
			}
			printOrder(cmd.OutOrStdout(), &order)
			return nil
		},
	}
	cmd.Flags().String("name", "", "Customer name")
	cmd.Flags().String("phone", "", "Customer phone")
	cmd.Flags().String("restaurant", "", "Restaurant type: RAMEN, CURRY, PIZZA or SUSHI")
	cmd.Flags().String("pickup", "", "Pickup cell as x,y")
	cmd.Flags().String("delivery", "", "Delivery cell as x,y")
	for _, name := range []string{"name", "restaurant", "pickup", "delivery"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
