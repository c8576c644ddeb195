package ports

import (
	"context"

	"go.trai.ch/eagroute/internal/core/domain"
)

//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks

// Backend is the typed surface of the fleet backend's REST API.
// Implementations do not cache and do not retry.
type Backend interface {
	Health(ctx context.Context) (domain.Health, error)

	Grid(ctx context.Context) (domain.MapGrid, error)
	Restaurants(ctx context.Context) ([]domain.Restaurant, error)
	DeliveryPoints(ctx context.Context) ([]domain.DeliveryPoint, error)
	Stats(ctx context.Context) (domain.SystemStats, error)
	BlockedPaths(ctx context.Context) (domain.BlockedPaths, error)

	Bots(ctx context.Context) ([]domain.Bot, error)
	Bot(ctx context.Context, id int) (domain.Bot, error)
	BotRoute(ctx context.Context, id int) (domain.BotRoute, error)
	BotOrders(ctx context.Context, id int) ([]domain.Order, error)
	MoveBot(ctx context.Context, id int, to domain.Coord) (domain.MoveResult, error)

	Orders(ctx context.Context) ([]domain.Order, error)
	OrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	Order(ctx context.Context, id int) (domain.Order, error)
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) (domain.Order, error)
	CancelOrder(ctx context.Context, id int) (domain.Message, error)

	Distance(ctx context.Context, from, to domain.Coord) (domain.Distance, error)
	OptimizeRoutes(ctx context.Context) (map[int]domain.BotRoute, error)
	Efficiency(ctx context.Context) ([]domain.BotEfficiency, error)
	Rebalance(ctx context.Context) (domain.RebalanceResult, error)

	AutoMovementStatus(ctx context.Context) (domain.AutoMovementStatus, error)
	StartAutoMovement(ctx context.Context) (domain.AutoMovementToggle, error)
	StopAutoMovement(ctx context.Context) (domain.AutoMovementToggle, error)
}

// BackendConnector builds a Backend for the resolved backend settings.
type BackendConnector interface {
	// Connect returns a Backend that traces every request with tracer.
	Connect(settings domain.BackendSettings, tracer Tracer) (Backend, error)
}
