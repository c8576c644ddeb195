package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/engine/interaction"
	"go.trai.ch/eagroute/internal/ui/style"
)

// Grid geometry. The grid's column header sits on line gridTop-1.
const (
	gridTop        = 3
	rowLabelWidth  = 3
	cellWidth      = 4
	maxOrdersShown = 10
)

// cellAt maps a screen position to the grid cell drawn there.
func cellAt(x, y int) (domain.Coord, bool) {
	if x < rowLabelWidth || y < gridTop {
		return domain.Coord{}, false
	}
	c := domain.Coord{X: (x - rowLabelWidth) / cellWidth, Y: y - gridTop}
	if !c.InBounds(domain.GridSize) {
		return domain.Coord{}, false
	}
	return c, true
}

// View renders the UI.
func (m *Model) View() string {
	if m.Board.Offline {
		return m.offlineView()
	}
	if m.Board.Loading && !m.Board.Projection.Ready {
		return m.spinner.View() + " Loading fleet state…\n"
	}

	side := m.sidebar()
	if m.form != nil {
		side = m.form.View(&m.Board)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.gridView(), sidebarStyle.Render(side))

	var b strings.Builder
	b.WriteString(m.header() + "\n\n")
	b.WriteString(body + "\n\n")
	b.WriteString(m.flashLine() + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) header() string {
	title := titleStyle.Render("EAGROUTE")
	status := okStyle.Render(style.Dot + " live")
	if m.Board.Loading {
		status = m.spinner.View() + " syncing"
	} else if m.Board.LastErr != nil {
		status = warnStyle.Render(style.Warning + " degraded: " + domain.DetailOf(m.Board.LastErr))
	}
	return title + " " + status
}

func (m *Model) offlineView() string {
	var b strings.Builder
	b.WriteString(offlineTitleStyle.Render("BACKEND OFFLINE") + "\n\n")
	b.WriteString("The fleet backend cannot be reached.\n")
	if m.Board.LastErr != nil {
		b.WriteString(errorStyle.Render(style.Cross+" "+domain.DetailOf(m.Board.LastErr)) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("press r to retry · q to quit") + "\n")
	if m.Flash.Text != "" {
		b.WriteString(m.flashLine() + "\n")
	}
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}

func (m *Model) flashLine() string {
	switch {
	case m.Flash.Text == "":
		return ""
	case m.Flash.Err:
		return errorStyle.Render(style.Cross + " " + m.Flash.Text)
	default:
		return okStyle.Render(style.Check + " " + m.Flash.Text)
	}
}

func (m *Model) gridView() string {
	p := &m.Board.Projection
	size := m.gridSize()

	selectedAt, haveSelected := domain.Coord{}, false
	state := m.machine.State()
	if bot, ok := state.Selected(); ok {
		selectedAt, haveSelected = p.Locate(bot)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowLabelWidth))
	for x := range size {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-*d", cellWidth, x)))
	}
	b.WriteString("\n")

	for y := range size {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-*d", rowLabelWidth, y)))
		for x := range size {
			c := domain.Coord{X: x, Y: y}
			text := glyph(p.Cell(c))
			st := cellStyle(p.Cell(c))
			if haveSelected && c == selectedAt {
				st = selectedCellStyle
			}
			if c == m.Cursor {
				st = st.Inherit(cursorCellStyle)
			}
			b.WriteString(st.Render(text) + " ")
		}
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(style.Legend))
	return b.String()
}

// glyph is the three-character cell marker: point of interest, bot count and
// order overlay.
func glyph(cell domain.Cell, ok bool) string {
	if !ok {
		return " " + style.Unknown + " "
	}
	poi := "·"
	switch cell.POI.Kind {
	case domain.POIRestaurant:
		poi = style.Restaurant
	case domain.POIDeliveryPoint:
		poi = style.House
	case domain.POIBotStation:
		poi = style.Station
	}
	count := " "
	if n := len(cell.Occupants); n > 9 {
		count = style.Crowded
	} else if n > 0 {
		count = strconv.Itoa(n)
	}
	overlay := " "
	if len(cell.Overlays) > 0 {
		overlay = style.Order
	}
	return poi + count + overlay
}

func cellStyle(cell domain.Cell, ok bool) lipgloss.Style {
	switch {
	case !ok:
		return mutedStyle
	case cell.Occupied():
		return occupiedCellStyle
	case cell.POI.Kind == domain.POIRestaurant:
		return restaurantCellStyle
	default:
		return lipgloss.NewStyle()
	}
}

func (m *Model) sidebar() string {
	var b strings.Builder
	m.fleetSection(&b)
	b.WriteString("\n")
	m.selectionSection(&b)
	b.WriteString("\n")
	m.ordersSection(&b)
	b.WriteString("\n")
	m.activitySection(&b)
	return b.String()
}

func (m *Model) fleetSection(b *strings.Builder) {
	f := m.Board.Fleet
	b.WriteString(sectionStyle.Render("FLEET") + "\n")
	fmt.Fprintf(b, "%d bots · %d active · %d available · %d maintenance\n",
		f.Total, f.Active, f.Available, f.Maintenance)
	if m.Board.HasStats {
		o := m.Board.Stats.Orders
		fmt.Fprintf(b, "orders: %d pending · %d active · %d delivered\n", o.Pending, o.Active, o.Delivered)
	}
	switch {
	case !m.Board.HasAutopilot:
		b.WriteString(mutedStyle.Render("autopilot: unknown") + "\n")
	case m.Board.Autopilot.IsRunning:
		fmt.Fprintf(b, "autopilot: %s (%d routes)\n", okStyle.Render("running"), m.Board.Autopilot.ActiveRoutes)
	default:
		b.WriteString("autopilot: " + mutedStyle.Render("stopped") + "\n")
	}
	fmt.Fprintf(b, "blocked segments: %d\n", m.Board.Blocked)
}

func (m *Model) selectionSection(b *strings.Builder) {
	c := m.Cursor
	b.WriteString(sectionStyle.Render("CELL "+c.String()) + "\n")
	cell, ok := m.Board.Projection.Cell(c)
	if !ok {
		b.WriteString(mutedStyle.Render("not part of the map") + "\n")
		return
	}
	if cell.Name != "" {
		b.WriteString(cell.Name + "\n")
	}
	if cell.POI.Kind != domain.POINone {
		label := cell.POI.Kind.String()
		if cell.POI.Restaurant != "" {
			label += " (" + string(cell.POI.Restaurant) + ")"
		}
		b.WriteString(label + "\n")
	}
	for _, bot := range cell.Occupants {
		status := lipgloss.NewStyle().Foreground(style.BotStatusColor(string(bot.Status))).Render(string(bot.Status))
		fmt.Fprintf(b, "bot %d %s · %s · %d orders · %.0f%%\n",
			bot.ID, bot.Name, status, bot.CurrentOrders, bot.BatteryLevel)
	}
	for _, o := range cell.Overlays {
		fmt.Fprintf(b, "order %d %s (%s)\n", o.ID, o.LocationType, o.Status)
	}

	state := m.machine.State()
	switch state.Phase {
	case interaction.PhaseSelected:
		fmt.Fprintf(b, "%s bot %d\n", selectedCellStyle.Render("selected"), state.Bot)
	case interaction.PhaseMoving:
		fmt.Fprintf(b, "%s bot %d → %s\n", selectedCellStyle.Render("moving"), state.Bot, state.Target)
	case interaction.PhaseIdle:
	}
}

func (m *Model) ordersSection(b *strings.Builder) {
	orders := m.Board.Orders
	b.WriteString(sectionStyle.Render(fmt.Sprintf("ORDERS (%d)", len(orders))) + "\n")
	if len(orders) == 0 {
		b.WriteString(mutedStyle.Render("no orders") + "\n")
		return
	}

	start := max(m.OrderIdx-maxOrdersShown/2, 0)
	end := min(start+maxOrdersShown, len(orders))
	start = max(end-maxOrdersShown, 0)
	for i := start; i < end; i++ {
		o := orders[i]
		cursor := "  "
		if i == m.OrderIdx {
			cursor = selectedCellStyle.Render("> ")
		}
		bot := "-"
		if o.BotID != nil {
			bot = "bot " + strconv.Itoa(*o.BotID)
		}
		line := fmt.Sprintf("#%-4d %-10s %-12s %-6s %s", o.ID, o.Status, truncate(o.CustomerName, 12), o.RestaurantType, bot)
		if o.Status.Terminal() {
			line = mutedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
}

func (m *Model) activitySection(b *strings.Builder) {
	b.WriteString(sectionStyle.Render("ACTIVITY") + "\n")
	if len(m.Activity) == 0 {
		b.WriteString(mutedStyle.Render("nothing yet") + "\n")
		return
	}
	for i := len(m.Activity) - 1; i >= 0; i-- {
		a := m.Activity[i]
		ts := mutedStyle.Render(a.At.Format("15:04:05"))
		if a.Err != nil {
			fmt.Fprintf(b, "%s %s %s: %s\n", ts, errorStyle.Render(style.Cross), a.Name, domain.DetailOf(a.Err))
			continue
		}
		fmt.Fprintf(b, "%s %s %s %s\n", ts, okStyle.Render(style.Check), a.Name,
			mutedStyle.Render(a.Duration.Round(time.Millisecond).String()))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
