package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Select    key.Binding
	Clear     key.Binding
	NextOrder key.Binding
	PrevOrder key.Binding

	NewOrder  key.Binding
	Cancel    key.Binding
	Advance   key.Binding
	Rebalance key.Binding
	Autopilot key.Binding
	Refetch   key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap is the built-in binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "right"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select/move"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	NextOrder: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next order"),
	),
	PrevOrder: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev order"),
	),
	NewOrder: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new order"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "cancel order"),
	),
	Advance: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "advance order"),
	),
	Rebalance: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "rebalance"),
	),
	Autopilot: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "autopilot"),
	),
	Refetch: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refetch"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Clear, k.NewOrder, k.Refetch, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Clear, k.NextOrder, k.PrevOrder},
		{k.NewOrder, k.Cancel, k.Advance, k.Rebalance},
		{k.Autopilot, k.Refetch, k.Help, k.Quit},
	}
}
