package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/eagroute/internal/core/domain"
)

func render(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	_, _ = fmt.Fprintln(w, t.Render())
}

func optionalInt(v *int, none string) string {
	if v == nil {
		return none
	}
	return strconv.Itoa(*v)
}

func battery(level float64) string {
	return strconv.FormatFloat(level, 'f', 0, 64) + "%"
}

func printBots(w io.Writer, bots []domain.Bot) {
	rows := make([][]string, 0, len(bots))
	for i := range bots {
		b := &bots[i]
		rows = append(rows, []string{
			strconv.Itoa(b.ID),
			b.Name,
			b.Position().String(),
			string(b.Status),
			fmt.Sprintf("%d/%d", b.CurrentOrders, b.MaxCapacity),
			battery(b.BatteryLevel),
		})
	}
	render(w, []string{"ID", "NAME", "POSITION", "STATUS", "LOAD", "BATTERY"}, rows)
}

func printOrders(w io.Writer, orders []domain.Order) {
	rows := make([][]string, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		rows = append(rows, []string{
			strconv.Itoa(o.ID),
			o.CustomerName,
			string(o.RestaurantType),
			o.Pickup().String(),
			o.Delivery().String(),
			string(o.Status),
			optionalInt(o.BotID, "-"),
		})
	}
	render(w, []string{"ID", "CUSTOMER", "RESTAURANT", "PICKUP", "DELIVERY", "STATUS", "BOT"}, rows)
}

func printOrder(w io.Writer, o *domain.Order) {
	_, _ = fmt.Fprintf(w, "order #%d %s: %s from %s to %s, bot %s\n",
		o.ID, o.Status, o.RestaurantType, o.Pickup(), o.Delivery(), optionalInt(o.BotID, "unassigned"))
}

func printBotDetail(w io.Writer, bot *domain.Bot, route *domain.BotRoute, orders []domain.Order) {
	_, _ = fmt.Fprintf(w, "bot #%d %s at %s, %s, battery %s, load %d/%d\n",
		bot.ID, bot.Name, bot.Position(), bot.Status, battery(bot.BatteryLevel), bot.CurrentOrders, bot.MaxCapacity)

	if len(route.RoutePoints) == 0 {
		_, _ = fmt.Fprintln(w, "route: none")
	} else {
		_, _ = fmt.Fprintf(w, "route: %d stops, distance %d, about %ds\n",
			len(route.RoutePoints), route.TotalDistance, route.EstimatedTime)
		for _, p := range route.RoutePoints {
			_, _ = fmt.Fprintf(w, "  %d,%d %s order %s\n", p.X, p.Y, p.Type, optionalInt(p.OrderID, "-"))
		}
	}

	if len(orders) == 0 {
		_, _ = fmt.Fprintln(w, "orders: none")
		return
	}
	_, _ = fmt.Fprintf(w, "orders: %d\n", len(orders))
	printOrders(w, orders)
}

func printDistance(w io.Writer, d *domain.Distance) {
	if !d.Reachable() {
		_, _ = fmt.Fprintln(w, "no path: the target is unreachable around blocked segments")
		return
	}
	_, _ = fmt.Fprintf(w, "distance %d, about %ds\n", d.Distance, d.TimeSeconds)
	if len(d.Path) == 0 {
		return
	}
	_, _ = fmt.Fprint(w, "path:")
	for _, step := range d.Path {
		_, _ = fmt.Fprintf(w, " %d,%d", step.X, step.Y)
	}
	_, _ = fmt.Fprintln(w)
}

func printEfficiency(w io.Writer, entries []domain.BotEfficiency) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.BotID),
			string(e.Status),
			strconv.Itoa(e.TotalOrders),
			strconv.Itoa(e.DeliveredOrders),
			e.CurrentLoad,
			strconv.Itoa(e.CurrentRouteDistance),
			battery(e.BatteryLevel),
		})
	}
	render(w, []string{"BOT", "STATUS", "ORDERS", "DELIVERED", "LOAD", "ROUTE", "BATTERY"}, rows)
}
