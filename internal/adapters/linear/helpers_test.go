package linear_test

import (
	"sync"
	"time"

	"go.trai.ch/eagroute/internal/core/domain"
)

type entries struct {
	mu sync.Mutex
	m  map[domain.Key]domain.Entry
}

func (e *entries) Read(key domain.Key) domain.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	if entry, ok := e.m[key]; ok {
		return entry
	}
	return domain.Entry{Key: key}
}

func (e *entries) set(key domain.Key, v any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.m[key] = domain.Entry{Key: key, Value: v, HasValue: true, Status: domain.StatusFresh, FetchedAt: time.Now()}
}

func (e *entries) setEntry(entry domain.Entry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.m[entry.Key] = entry
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

// fleet is a loaded dashboard: three bots, two active orders and one
// coordinate missing from the grid.
func fleet() *entries {
	e := &entries{m: make(map[domain.Key]domain.Entry)}

	g := domain.MapGrid{Grid: make(map[string]domain.GridCell), GridSize: domain.GridSize}
	for y := range domain.GridSize {
		for x := range domain.GridSize {
			c := domain.Coord{X: x, Y: y}
			g.Grid[c.String()] = domain.GridCell{X: x, Y: y, NodeType: domain.NodePlain}
		}
	}
	pizza, ramen := domain.RestaurantPizza, domain.RestaurantRamen
	g.Grid["2,0"] = domain.GridCell{X: 2, Y: 0, NodeType: domain.NodeRestaurant, IsRestaurant: true, RestaurantType: &pizza}
	g.Grid["7,1"] = domain.GridCell{X: 7, Y: 1, NodeType: domain.NodeRestaurant, IsRestaurant: true, RestaurantType: &ramen}
	g.Grid["3,3"] = domain.GridCell{X: 3, Y: 3, NodeType: domain.NodeHouse, IsDeliveryPoint: true}
	g.Grid["8,8"] = domain.GridCell{X: 8, Y: 8, NodeType: domain.NodeHouse, IsDeliveryPoint: true}
	g.Grid["0,8"] = domain.GridCell{X: 0, Y: 8, NodeType: domain.NodeBotStation, IsBotStation: true}
	delete(g.Grid, "4,7")
	e.set(domain.KeyGrid, g)

	e.set(domain.KeyBots, []domain.Bot{
		{ID: 1, Name: "Rover", CurrentX: 0, CurrentY: 0, Status: domain.BotBusy},
		{ID: 2, Name: "Scout", CurrentX: 0, CurrentY: 0, Status: domain.BotIdle},
		{ID: 3, Name: "Dash", CurrentX: 5, CurrentY: 5, Status: domain.BotIdle},
	})

	botID := 1
	e.set(domain.KeyOrders, []domain.Order{
		{ID: 1, CustomerName: "Ann", RestaurantType: domain.RestaurantRamen, Status: domain.OrderDelivered, PickupX: 7, PickupY: 1, DeliveryX: 3, DeliveryY: 3},
		{ID: 4, CustomerName: "Eve", RestaurantType: domain.RestaurantSushi, Status: domain.OrderPickedUp, BotID: &botID, PickupX: 2, PickupY: 0, DeliveryX: 6, DeliveryY: 2},
		{ID: 2, CustomerName: "Bob", RestaurantType: domain.RestaurantPizza, Status: domain.OrderPending, PickupX: 2, PickupY: 0, DeliveryX: 8, DeliveryY: 8},
	})

	stats := domain.SystemStats{}
	stats.Bots.Total, stats.Bots.Idle, stats.Bots.Busy = 3, 2, 1
	stats.Orders.Pending, stats.Orders.Active, stats.Orders.Delivered = 1, 1, 1
	e.set(domain.KeyStats, stats)

	e.set(domain.KeyAutoMovement, domain.AutoMovementStatus{IsRunning: true, ActiveRoutes: 2})
	e.set(domain.KeyBlockedPaths, domain.BlockedPaths{
		VisualizationData: &struct {
			BlockedSegments []domain.BlockedSegment `json:"blocked_segments"`
		}{BlockedSegments: []domain.BlockedSegment{{FromX: 1}, {FromX: 2}, {FromX: 3}}},
	})
	return e
}
