package app

import (
	"context"

	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/engine/store"
	"golang.org/x/sync/errgroup"
)

// StatusReport is the answer of the status command.
type StatusReport struct {
	BaseURL string
	Health  domain.Health
	Stats   domain.SystemStats
	Blocked int
}

// BotDetail is a bot together with its planned route and assigned orders.
type BotDetail struct {
	Bot    domain.Bot
	Route  domain.BotRoute
	Orders []domain.Order
}

// Status fetches health, stats and blocked paths concurrently.
func (a *App) Status(ctx context.Context) (StatusReport, error) {
	return query(a, func(s *Session) (StatusReport, error) {
		report := StatusReport{BaseURL: s.Settings.Backend.BaseURL}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			report.Health, err = store.Fetch[domain.Health](gctx, s.Store, domain.KeyHealth)
			return err
		})
		g.Go(func() error {
			var err error
			report.Stats, err = store.Fetch[domain.SystemStats](gctx, s.Store, domain.KeyStats)
			return err
		})
		g.Go(func() error {
			blocked, err := store.Fetch[domain.BlockedPaths](gctx, s.Store, domain.KeyBlockedPaths)
			report.Blocked = len(blocked.Segments())
			return err
		})
		return report, g.Wait()
	})
}

// Bots returns every bot.
func (a *App) Bots(ctx context.Context) ([]domain.Bot, error) {
	return query(a, func(s *Session) ([]domain.Bot, error) {
		return store.Fetch[[]domain.Bot](ctx, s.Store, domain.KeyBots)
	})
}

// Bot returns one bot with its route and orders, fetched concurrently.
func (a *App) Bot(ctx context.Context, id int) (BotDetail, error) {
	return query(a, func(s *Session) (BotDetail, error) {
		var detail BotDetail

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			detail.Bot, err = store.Fetch[domain.Bot](gctx, s.Store, domain.BotKey(id))
			return err
		})
		g.Go(func() error {
			var err error
			detail.Route, err = store.Fetch[domain.BotRoute](gctx, s.Store, domain.BotRouteKey(id))
			return err
		})
		g.Go(func() error {
			var err error
			detail.Orders, err = store.Fetch[[]domain.Order](gctx, s.Store, domain.BotOrdersKey(id))
			return err
		})
		return detail, g.Wait()
	})
}

// Orders returns every order, or only those in status when it is set.
func (a *App) Orders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	key := domain.KeyOrders
	if status != "" {
		key = domain.OrdersByStatusKey(status)
	}
	return query(a, func(s *Session) ([]domain.Order, error) {
		return store.Fetch[[]domain.Order](ctx, s.Store, key)
	})
}

// Distance returns the shortest path between two cells. It is not cached.
func (a *App) Distance(ctx context.Context, from, to domain.Coord) (domain.Distance, error) {
	return query(a, func(s *Session) (domain.Distance, error) {
		return s.Backend.Distance(ctx, from, to)
	})
}

// OptimizeRoutes returns the optimized route of every busy bot.
func (a *App) OptimizeRoutes(ctx context.Context) (map[int]domain.BotRoute, error) {
	return query(a, func(s *Session) (map[int]domain.BotRoute, error) {
		return store.Fetch[map[int]domain.BotRoute](ctx, s.Store, domain.KeyRouteOptimize)
	})
}

// Efficiency returns per-bot delivery metrics.
func (a *App) Efficiency(ctx context.Context) ([]domain.BotEfficiency, error) {
	return query(a, func(s *Session) ([]domain.BotEfficiency, error) {
		return store.Fetch[[]domain.BotEfficiency](ctx, s.Store, domain.KeyRouteEfficiency)
	})
}

// AutoMovement returns the state of the backend's automatic bot driver.
func (a *App) AutoMovement(ctx context.Context) (domain.AutoMovementStatus, error) {
	return query(a, func(s *Session) (domain.AutoMovementStatus, error) {
		return store.Fetch[domain.AutoMovementStatus](ctx, s.Store, domain.KeyAutoMovement)
	})
}
