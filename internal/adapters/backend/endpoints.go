package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.trai.ch/eagroute/internal/core/domain"
)

// get issues a GET and decodes the body as T.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var out T
	err := c.do(ctx, request{method: http.MethodGet, path: path, query: query}, &out)
	return out, err
}

// send issues a mutating request and decodes the body as T.
func send[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var out T
	err := c.do(ctx, request{method: method, path: path, query: query, body: body}, &out)
	return out, err
}

func idPath(prefix string, id int) string {
	return prefix + "/" + strconv.Itoa(id)
}

// Health reports backend liveness. It is served without the API prefix.
func (c *Client) Health(ctx context.Context) (domain.Health, error) {
	var out domain.Health
	err := c.do(ctx, request{method: http.MethodGet, path: "/health", public: true}, &out)
	return out, err
}

// Grid returns the full map grid.
func (c *Client) Grid(ctx context.Context) (domain.MapGrid, error) {
	return get[domain.MapGrid](ctx, c, "/map/grid", nil)
}

// Restaurants returns the fixed restaurant locations.
func (c *Client) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return get[[]domain.Restaurant](ctx, c, "/map/restaurants", nil)
}

// DeliveryPoints returns the fixed delivery locations.
func (c *Client) DeliveryPoints(ctx context.Context) ([]domain.DeliveryPoint, error) {
	return get[[]domain.DeliveryPoint](ctx, c, "/map/delivery-points", nil)
}

// Stats returns aggregate system statistics.
func (c *Client) Stats(ctx context.Context) (domain.SystemStats, error) {
	return get[domain.SystemStats](ctx, c, "/map/stats", nil)
}

// BlockedPaths returns the blocked grid segments.
func (c *Client) BlockedPaths(ctx context.Context) (domain.BlockedPaths, error) {
	return get[domain.BlockedPaths](ctx, c, "/map/blocked-paths", nil)
}

// Bots returns every bot.
func (c *Client) Bots(ctx context.Context) ([]domain.Bot, error) {
	return get[[]domain.Bot](ctx, c, "/bots/", nil)
}

// Bot returns a single bot.
func (c *Client) Bot(ctx context.Context, id int) (domain.Bot, error) {
	return get[domain.Bot](ctx, c, idPath("/bots", id), nil)
}

// BotRoute returns the planned route of a bot.
func (c *Client) BotRoute(ctx context.Context, id int) (domain.BotRoute, error) {
	return get[domain.BotRoute](ctx, c, idPath("/bots", id)+"/route", nil)
}

// BotOrders returns the orders assigned to a bot.
func (c *Client) BotOrders(ctx context.Context, id int) ([]domain.Order, error) {
	return get[[]domain.Order](ctx, c, idPath("/bots", id)+"/orders", nil)
}

// MoveBot moves a bot to the target cell.
func (c *Client) MoveBot(ctx context.Context, id int, to domain.Coord) (domain.MoveResult, error) {
	query := url.Values{}
	query.Set("x", strconv.Itoa(to.X))
	query.Set("y", strconv.Itoa(to.Y))
	return send[domain.MoveResult](ctx, c, http.MethodPost, idPath("/bots", id)+"/move", query, nil)
}

// Orders returns every order.
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	return get[[]domain.Order](ctx, c, "/orders/", nil)
}

// OrdersByStatus returns the orders in the given status.
func (c *Client) OrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	return get[[]domain.Order](ctx, c, "/orders/", url.Values{"status": {string(status)}})
}

// Order returns a single order.
func (c *Client) Order(ctx context.Context, id int) (domain.Order, error) {
	return get[domain.Order](ctx, c, idPath("/orders", id), nil)
}

// CreateOrder submits a new order.
func (c *Client) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	return send[domain.Order](ctx, c, http.MethodPost, "/orders/", nil, req)
}

// UpdateOrderStatus sets the status of an order.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) (domain.Order, error) {
	body := map[string]domain.OrderStatus{"status": status}
	return send[domain.Order](ctx, c, http.MethodPut, idPath("/orders", id), nil, body)
}

// CancelOrder cancels an order.
func (c *Client) CancelOrder(ctx context.Context, id int) (domain.Message, error) {
	return send[domain.Message](ctx, c, http.MethodDelete, idPath("/orders", id), nil, nil)
}

// Distance returns the shortest path between two cells around blocked segments.
func (c *Client) Distance(ctx context.Context, from, to domain.Coord) (domain.Distance, error) {
	query := url.Values{}
	query.Set("start_x", strconv.Itoa(from.X))
	query.Set("start_y", strconv.Itoa(from.Y))
	query.Set("end_x", strconv.Itoa(to.X))
	query.Set("end_y", strconv.Itoa(to.Y))
	return get[domain.Distance](ctx, c, "/routes/distance", query)
}

// OptimizeRoutes returns the optimized route of every busy bot, keyed by bot id.
func (c *Client) OptimizeRoutes(ctx context.Context) (map[int]domain.BotRoute, error) {
	return get[map[int]domain.BotRoute](ctx, c, "/routes/optimize", nil)
}

// Efficiency returns per-bot delivery metrics.
func (c *Client) Efficiency(ctx context.Context) ([]domain.BotEfficiency, error) {
	return get[[]domain.BotEfficiency](ctx, c, "/routes/efficiency", nil)
}

// Rebalance asks the backend to reassign pending orders.
func (c *Client) Rebalance(ctx context.Context) (domain.RebalanceResult, error) {
	return send[domain.RebalanceResult](ctx, c, http.MethodPost, "/routes/rebalance", nil, nil)
}

// AutoMovementStatus returns the state of the backend's automatic bot driver.
func (c *Client) AutoMovementStatus(ctx context.Context) (domain.AutoMovementStatus, error) {
	return get[domain.AutoMovementStatus](ctx, c, "/auto-movement/status", nil)
}

// StartAutoMovement starts the automatic bot driver.
func (c *Client) StartAutoMovement(ctx context.Context) (domain.AutoMovementToggle, error) {
	return send[domain.AutoMovementToggle](ctx, c, http.MethodPost, "/auto-movement/start", nil, nil)
}

// StopAutoMovement stops the automatic bot driver.
func (c *Client) StopAutoMovement(ctx context.Context) (domain.AutoMovementToggle, error) {
	return send[domain.AutoMovementToggle](ctx, c, http.MethodPost, "/auto-movement/stop", nil, nil)
}
