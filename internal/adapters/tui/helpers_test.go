package tui_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.trai.ch/eagroute/internal/adapters/tui"
	"go.trai.ch/eagroute/internal/core/domain"
)

type fakeController struct {
	mu      sync.Mutex
	entries map[domain.Key]domain.Entry
	calls   []string
	err     error
}

func newFake() *fakeController {
	return &fakeController{entries: make(map[domain.Key]domain.Entry)}
}

func (f *fakeController) set(key domain.Key, v any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = domain.Entry{Key: key, Value: v, HasValue: true, Status: domain.StatusFresh, FetchedAt: time.Now()}
}

func (f *fakeController) setEntry(e domain.Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[e.Key] = e
}

func (f *fakeController) record(format string, args ...any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return f.err
}

func (f *fakeController) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeController) Read(key domain.Key) domain.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.entries[key]; ok {
		return e
	}
	return domain.Entry{Key: key}
}

func (f *fakeController) Refetch(key domain.Key) error {
	return f.record("refetch %s", key)
}

func (f *fakeController) MoveBot(_ context.Context, id int, to domain.Coord) (domain.MoveResult, error) {
	return domain.MoveResult{BotID: id, NewPosition: to}, f.record("move %d %s", id, to)
}

func (f *fakeController) CreateOrder(_ context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	return domain.Order{}, f.record("create %s %s %s %s", req.CustomerName, req.RestaurantType, req.Pickup(), req.Delivery())
}

func (f *fakeController) UpdateOrderStatus(_ context.Context, id int, status domain.OrderStatus) (domain.Order, error) {
	return domain.Order{}, f.record("update %d %s", id, status)
}

func (f *fakeController) CancelOrder(_ context.Context, id int) (domain.Message, error) {
	return domain.Message{}, f.record("cancel %d", id)
}

func (f *fakeController) RebalanceOrders(_ context.Context) (domain.RebalanceResult, error) {
	return domain.RebalanceResult{ReassignedOrders: 2}, f.record("rebalance")
}

func (f *fakeController) StartAutoMovement(_ context.Context) (domain.AutoMovementToggle, error) {
	return domain.AutoMovementToggle{}, f.record("autopilot start")
}

func (f *fakeController) StopAutoMovement(_ context.Context) (domain.AutoMovementToggle, error) {
	return domain.AutoMovementToggle{}, f.record("autopilot stop")
}

// fullGrid returns a complete grid with a sushi restaurant at 0,8.
func fullGrid() domain.MapGrid {
	g := domain.MapGrid{Grid: make(map[string]domain.GridCell), GridSize: domain.GridSize}
	for y := range domain.GridSize {
		for x := range domain.GridSize {
			c := domain.Coord{X: x, Y: y}
			g.Grid[c.String()] = domain.GridCell{X: x, Y: y, NodeType: domain.NodePlain}
		}
	}
	sushi := domain.RestaurantSushi
	g.Grid["0,8"] = domain.GridCell{X: 0, Y: 8, NodeType: domain.NodeRestaurant, IsRestaurant: true, RestaurantType: &sushi}
	return g
}

// seeded returns a controller with a loaded map: bot 1 at 0,0 and bot 2 at 4,4.
func seeded() *fakeController {
	f := newFake()
	f.set(domain.KeyGrid, fullGrid())
	f.set(domain.KeyBots, []domain.Bot{
		{ID: 1, Name: "Rover", CurrentX: 0, CurrentY: 0, Status: domain.BotIdle},
		{ID: 2, Name: "Scout", CurrentX: 4, CurrentY: 4, Status: domain.BotBusy},
	})
	f.set(domain.KeyOrders, []domain.Order{})
	f.set(domain.KeyRestaurants, []domain.Restaurant{{ID: 1, X: 0, Y: 8, RestaurantType: domain.RestaurantSushi, Name: "Sushi Place"}})
	return f
}

func newModel(t *testing.T, f *fakeController) *tui.Model {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	return tui.NewModel(context.Background(), f)
}

func send(t *testing.T, m *tui.Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	updated, cmd := m.Update(msg)
	require.Same(t, m, updated)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// exec runs cmd and feeds its message back into the model.
func exec(t *testing.T, m *tui.Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	send(t, m, cmd())
}
