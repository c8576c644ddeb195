// Package style holds the brand colors, status icons and grid markers shared
// by the dashboard surfaces and the logger.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
)

// Grid markers. Both surfaces draw a cell's point of interest, its bot count
// and its order overlay with these.
const (
	Restaurant = "R"
	House      = "H"
	Station    = "S"
	Order      = "*"
	Crowded    = "+"
	Unknown    = "?"
)

// Legend explains the grid markers.
const Legend = Restaurant + " restaurant  " + House + " house  " + Station + " station  1-9 bots  " + Order + " order"

// BotStatusColor is the color a bot status is drawn in.
func BotStatusColor(status string) lipgloss.Color {
	switch status {
	case "IDLE":
		return Green
	case "BUSY":
		return Iris
	default:
		return Yellow
	}
}
