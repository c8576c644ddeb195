package linear

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/engine/dashboard"
	"go.trai.ch/eagroute/internal/engine/projection"
	"go.trai.ch/eagroute/internal/ui/style"
)

const maxFrameOrders = 10

// Frame renders a plain-text snapshot of the view. It holds no timestamps so
// identical fleet states produce identical frames.
func Frame(v *dashboard.View) string {
	var b strings.Builder
	if v.Offline {
		b.WriteString("backend offline")
		if v.LastErr != nil {
			b.WriteString(": " + firstLine(domain.DetailOf(v.LastErr)))
		}
		b.WriteString("\n")
		return b.String()
	}

	f := v.Fleet
	fmt.Fprintf(&b, "fleet: %d bots, %d active, %d available, %d maintenance\n",
		f.Total, f.Active, f.Available, f.Maintenance)
	if v.HasStats {
		o := v.Stats.Orders
		fmt.Fprintf(&b, "orders: %d pending, %d active, %d delivered\n", o.Pending, o.Active, o.Delivered)
	}
	switch {
	case !v.HasAutopilot:
		b.WriteString("autopilot: unknown\n")
	case v.Autopilot.IsRunning:
		fmt.Fprintf(&b, "autopilot: running, %d routes\n", v.Autopilot.ActiveRoutes)
	default:
		b.WriteString("autopilot: stopped\n")
	}
	fmt.Fprintf(&b, "blocked segments: %d\n\n", v.Blocked)

	writeGrid(&b, &v.Projection)
	b.WriteString("\n")
	writeOrders(&b, v.ActiveOrders())
	return b.String()
}

func writeGrid(b *strings.Builder, p *projection.Projection) {
	b.WriteString("  ")
	for x := range p.Size {
		b.WriteString(" " + strconv.Itoa(x%10))
	}
	b.WriteString("\n")
	for y := range p.Size {
		fmt.Fprintf(b, "%2d", y)
		for x := range p.Size {
			b.WriteString(" " + cellChar(p.Cell(domain.Coord{X: x, Y: y})))
		}
		b.WriteString("\n")
	}
	b.WriteString("legend: R restaurant, H house, S station, 1-9 bots, * order, ? unmapped\n")
	if n := len(p.Unplaced.Bots); n > 0 {
		fmt.Fprintf(b, "unplaced bots: %d\n", n)
	}
}

// cellChar picks one marker per cell: bots first, then orders, then the
// point of interest.
func cellChar(cell domain.Cell, ok bool) string {
	switch {
	case !ok:
		return style.Unknown
	case len(cell.Occupants) > 9:
		return style.Crowded
	case len(cell.Occupants) > 0:
		return strconv.Itoa(len(cell.Occupants))
	case len(cell.Overlays) > 0:
		return style.Order
	}
	switch cell.POI.Kind {
	case domain.POIRestaurant:
		return style.Restaurant
	case domain.POIDeliveryPoint:
		return style.House
	case domain.POIBotStation:
		return style.Station
	default:
		return "."
	}
}

func writeOrders(b *strings.Builder, orders []domain.Order) {
	fmt.Fprintf(b, "active orders: %d\n", len(orders))
	for i, o := range orders {
		if i == maxFrameOrders {
			fmt.Fprintf(b, "  ... %d more\n", len(orders)-maxFrameOrders)
			break
		}
		bot := "unassigned"
		if o.BotID != nil {
			bot = "bot " + strconv.Itoa(*o.BotID)
		}
		fmt.Fprintf(b, "  #%d %s %s %s %s -> %s %s\n",
			o.ID, o.Status, o.CustomerName, o.RestaurantType, o.Pickup(), o.Delivery(), bot)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
