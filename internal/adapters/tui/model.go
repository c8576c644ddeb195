// Package tui provides the interactive fleet dashboard.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/engine/dashboard"
	"go.trai.ch/eagroute/internal/engine/interaction"
)

// maxActivity is the number of feed entries kept on screen.
const maxActivity = 8

// Controller is the dashboard's view of the application: cached reads,
// manual refetches and the mutating commands.
type Controller interface {
	dashboard.Reader
	interaction.Mover
	Refetch(key domain.Key) error
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) (domain.Order, error)
	CancelOrder(ctx context.Context, id int) (domain.Message, error)
	RebalanceOrders(ctx context.Context) (domain.RebalanceResult, error)
	StartAutoMovement(ctx context.Context) (domain.AutoMovementToggle, error)
	StopAutoMovement(ctx context.Context) (domain.AutoMovementToggle, error)
}

// MsgResourceUpdate tells the model a cached entry changed.
type MsgResourceUpdate struct {
	Key domain.Key
}

// MsgActivity carries a finished span for the activity feed.
type MsgActivity struct {
	Activity domain.Activity
}

// msgCommandDone reports the outcome of a command started from a key.
type msgCommandDone struct {
	label string
	err   error
}

// Flash is the one-line status shown under the grid.
type Flash struct {
	Text string
	Err  bool
}

// Model is the dashboard state.
type Model struct {
	ctx     context.Context
	ctrl    Controller
	machine *interaction.Machine
	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	Board    dashboard.View
	Cursor   domain.Coord
	OrderIdx int
	Activity []domain.Activity
	Flash    Flash
	form     *orderForm

	width  int
	height int
}

// NewModel creates a dashboard model driven by ctrl.
func NewModel(ctx context.Context, ctrl Controller) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sectionStyle

	return &Model{
		ctx:     ctx,
		ctrl:    ctrl,
		machine: interaction.New(ctrl),
		keys:    DefaultKeyMap,
		help:    help.New(),
		spinner: sp,
		Board:   dashboard.Build(ctrl),
	}
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Selection returns the interaction state.
func (m *Model) Selection() interaction.State {
	return m.machine.State()
}

// FormOpen reports whether the order form is shown.
func (m *Model) FormOpen() bool {
	return m.form != nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case MsgResourceUpdate:
		m.refresh()

	case MsgActivity:
		if dashboard.Notable(msg.Activity) {
			m.Activity = append(m.Activity, msg.Activity)
			if len(m.Activity) > maxActivity {
				m.Activity = m.Activity[len(m.Activity)-maxActivity:]
			}
		}

	case msgCommandDone:
		if msg.err != nil {
			m.Flash = Flash{Text: msg.label + ": " + domain.DetailOf(msg.err), Err: true}
		} else {
			m.Flash = Flash{Text: msg.label}
		}
		m.refresh()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.form == nil {
			if c, ok := cellAt(msg.X, msg.Y); ok {
				m.Cursor = c
				return m, m.click(c)
			}
		}

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) refresh() {
	m.Board = dashboard.Build(m.ctrl)
	if n := len(m.Board.Orders); m.OrderIdx >= n {
		m.OrderIdx = max(n-1, 0)
	}
}

//nolint:cyclop // one branch per binding
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) && (m.form == nil || msg.String() == "ctrl+c") {
		return tea.Quit
	}

	if m.form != nil {
		return m.handleFormKey(msg)
	}

	if m.Board.Offline {
		if key.Matches(msg, m.keys.Refetch) {
			return m.refetchAll()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.Cursor.Y = max(m.Cursor.Y-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.Cursor.Y = min(m.Cursor.Y+1, m.gridSize()-1)
	case key.Matches(msg, m.keys.Left):
		m.Cursor.X = max(m.Cursor.X-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.Cursor.X = min(m.Cursor.X+1, m.gridSize()-1)
	case key.Matches(msg, m.keys.Select):
		return m.click(m.Cursor)
	case key.Matches(msg, m.keys.Clear):
		m.machine.Clear()
	case key.Matches(msg, m.keys.NextOrder):
		if n := len(m.Board.Orders); n > 0 {
			m.OrderIdx = (m.OrderIdx + 1) % n
		}
	case key.Matches(msg, m.keys.PrevOrder):
		if n := len(m.Board.Orders); n > 0 {
			m.OrderIdx = (m.OrderIdx - 1 + n) % n
		}
	case key.Matches(msg, m.keys.NewOrder):
		m.form = newOrderForm()
		return textinput.Blink
	case key.Matches(msg, m.keys.Cancel):
		return m.cancelOrder()
	case key.Matches(msg, m.keys.Advance):
		return m.advanceOrder()
	case key.Matches(msg, m.keys.Rebalance):
		return m.rebalance()
	case key.Matches(msg, m.keys.Autopilot):
		return m.toggleAutopilot()
	case key.Matches(msg, m.keys.Refetch):
		return m.refetchAll()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	action, cmd := m.form.Update(msg)
	switch action {
	case formCancel:
		m.form = nil
	case formSubmit:
		req, err := m.form.Request(&m.Board)
		if err != nil {
			return nil
		}
		m.form = nil
		return m.run("order created for "+req.CustomerName, func(ctx context.Context) error {
			_, err := m.ctrl.CreateOrder(ctx, req)
			return err
		})
	}
	return cmd
}

func (m *Model) gridSize() int {
	if m.Board.Projection.Size > 0 {
		return m.Board.Projection.Size
	}
	return domain.GridSize
}

// click feeds a cell to the interaction machine and starts the resulting move.
func (m *Model) click(c domain.Coord) tea.Cmd {
	// Resource updates may still be queued behind this message.
	m.refresh()
	mv, err := m.machine.Click(c, &m.Board.Projection)
	if err != nil {
		m.Flash = Flash{Text: domain.DetailOf(err), Err: true}
		return nil
	}
	if mv == nil {
		m.Flash = Flash{}
		if bot, ok := m.machine.State().Selected(); ok {
			m.Flash = Flash{Text: fmt.Sprintf("bot %d selected, choose a target cell", bot)}
		}
		return nil
	}

	ctx := m.ctx
	label := fmt.Sprintf("bot %d moving to %s", mv.Bot, mv.Target)
	m.Flash = Flash{Text: label + "…"}
	return func() tea.Msg {
		_, err := mv.Run(ctx)
		return msgCommandDone{label: label, err: err}
	}
}

func (m *Model) selectedOrder() (domain.Order, bool) {
	if m.OrderIdx < 0 || m.OrderIdx >= len(m.Board.Orders) {
		return domain.Order{}, false
	}
	return m.Board.Orders[m.OrderIdx], true
}

func (m *Model) cancelOrder() tea.Cmd {
	o, ok := m.selectedOrder()
	if !ok {
		return nil
	}
	if o.Status.Terminal() {
		m.Flash = Flash{Text: fmt.Sprintf("order %d is already %s", o.ID, o.Status), Err: true}
		return nil
	}
	return m.run(fmt.Sprintf("order %d cancelled", o.ID), func(ctx context.Context) error {
		_, err := m.ctrl.CancelOrder(ctx, o.ID)
		return err
	})
}

func (m *Model) advanceOrder() tea.Cmd {
	o, ok := m.selectedOrder()
	if !ok {
		return nil
	}
	next, ok := o.Status.Next()
	if !ok {
		m.Flash = Flash{Text: fmt.Sprintf("order %d is already %s", o.ID, o.Status), Err: true}
		return nil
	}
	return m.run(fmt.Sprintf("order %d → %s", o.ID, next), func(ctx context.Context) error {
		_, err := m.ctrl.UpdateOrderStatus(ctx, o.ID, next)
		return err
	})
}

func (m *Model) rebalance() tea.Cmd {
	return m.runReporting("rebalance", func(ctx context.Context) (string, error) {
		res, err := m.ctrl.RebalanceOrders(ctx)
		return fmt.Sprintf("rebalanced %d order(s), %d pending", res.ReassignedOrders, res.PendingOrders), err
	})
}

func (m *Model) toggleAutopilot() tea.Cmd {
	if m.Board.HasAutopilot && m.Board.Autopilot.IsRunning {
		return m.run("autopilot stopped", func(ctx context.Context) error {
			_, err := m.ctrl.StopAutoMovement(ctx)
			return err
		})
	}
	return m.run("autopilot started", func(ctx context.Context) error {
		_, err := m.ctrl.StartAutoMovement(ctx)
		return err
	})
}

func (m *Model) refetchAll() tea.Cmd {
	m.Flash = Flash{Text: "refetching…"}
	return func() tea.Msg {
		var firstErr error
		for _, k := range dashboard.Keys {
			if err := m.ctrl.Refetch(k); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return msgCommandDone{label: "refetch requested", err: firstErr}
	}
}

// run wraps a command call in a tea.Cmd reporting its outcome.
func (m *Model) run(label string, fn func(ctx context.Context) error) tea.Cmd {
	return m.runReporting(label, func(ctx context.Context) (string, error) {
		return label, fn(ctx)
	})
}

// runReporting runs fn off the update loop. On success the flash shows the
// label fn returns; on failure it shows name.
func (m *Model) runReporting(name string, fn func(ctx context.Context) (string, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		label, err := fn(ctx)
		if err != nil {
			label = name
		}
		return msgCommandDone{label: label, err: err}
	}
}
