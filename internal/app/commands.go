package app

import (
	"context"

	"go.trai.ch/eagroute/internal/core/domain"
)

// MoveBot moves a bot to the target cell.
func (a *App) MoveBot(ctx context.Context, id int, to domain.Coord) (domain.MoveResult, error) {
	return query(a, func(s *Session) (domain.MoveResult, error) {
		return s.Coordinator.MoveBot(ctx, id, to)
	})
}

// CreateOrder validates and submits a new order.
func (a *App) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	return query(a, func(s *Session) (domain.Order, error) {
		return s.Coordinator.CreateOrder(ctx, req)
	})
}

// UpdateOrderStatus sets the status of an order.
func (a *App) UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) (domain.Order, error) {
	return query(a, func(s *Session) (domain.Order, error) {
		return s.Coordinator.UpdateOrderStatus(ctx, id, status)
	})
}

// CancelOrder cancels an order.
func (a *App) CancelOrder(ctx context.Context, id int) (domain.Message, error) {
	return query(a, func(s *Session) (domain.Message, error) {
		return s.Coordinator.CancelOrder(ctx, id)
	})
}

// Rebalance asks the backend to reassign pending orders.
func (a *App) Rebalance(ctx context.Context) (domain.RebalanceResult, error) {
	return query(a, func(s *Session) (domain.RebalanceResult, error) {
		return s.RebalanceOrders(ctx)
	})
}

// SetAutoMovement starts or stops the backend's automatic bot driver.
func (a *App) SetAutoMovement(ctx context.Context, running bool) (domain.AutoMovementToggle, error) {
	return query(a, func(s *Session) (domain.AutoMovementToggle, error) {
		if running {
			return s.StartAutoMovement(ctx)
		}
		return s.StopAutoMovement(ctx)
	})
}
