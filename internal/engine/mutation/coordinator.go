// Package mutation executes commands against the backend and invalidates the
// cached resources each command affects.
package mutation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports"
)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithRetryDelay sets the pause before an idempotent command is retried.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		c.retryDelay = d
	}
}

// Coordinator runs commands. It never writes cached entries itself; on
// success it hands the command's invalidation set to the Invalidator.
type Coordinator struct {
	backend     ports.Backend
	invalidator ports.Invalidator
	tracer      ports.Tracer
	logger      ports.Logger
	retryDelay  time.Duration
}

// New creates a Coordinator.
func New(backend ports.Backend, invalidator ports.Invalidator, tracer ports.Tracer, logger ports.Logger, opts ...Option) *Coordinator {
	c := &Coordinator{
		backend:     backend,
		invalidator: invalidator,
		tracer:      tracer,
		logger:      logger,
		retryDelay:  domain.CommandRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invalidations returns the keys a successful command makes stale. id is the
// target bot or order, ignored by commands without a target.
func Invalidations(cmd domain.Command, id int) []domain.Key {
	switch cmd {
	case domain.CommandCreateOrder:
		return []domain.Key{domain.KeyOrders, domain.KeyGrid, domain.KeyStats, domain.KeyBots}
	case domain.CommandMoveBot:
		return []domain.Key{domain.KeyBots, domain.BotKey(id), domain.KeyGrid, domain.KeyOrders}
	case domain.CommandUpdateOrderStatus:
		return []domain.Key{domain.KeyOrders, domain.OrderKey(id), domain.KeyGrid, domain.KeyStats}
	case domain.CommandCancelOrder:
		return []domain.Key{domain.KeyOrders, domain.OrderKey(id), domain.KeyGrid, domain.KeyStats, domain.KeyBots}
	case domain.CommandRebalanceOrders:
		return []domain.Key{domain.KeyOrders, domain.KeyBots, domain.KeyGrid, domain.KeyStats}
	case domain.CommandStartAutoMovement, domain.CommandStopAutoMovement:
		return []domain.Key{domain.KeyAutoMovement}
	default:
		return nil
	}
}

// CreateOrder validates and submits a new order. Validation failures make no request.
func (c *Coordinator) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if err := req.Validate(); err != nil {
		return domain.Order{}, &domain.CommandError{Command: domain.CommandCreateOrder, Err: err}
	}
	return execute(ctx, c, domain.CommandCreateOrder, 0, func(ctx context.Context) (domain.Order, error) {
		return c.backend.CreateOrder(ctx, req)
	})
}

// MoveBot moves bot id to the target cell.
func (c *Coordinator) MoveBot(ctx context.Context, id int, to domain.Coord) (domain.MoveResult, error) {
	if !to.InBounds(domain.GridSize) {
		err := &domain.ValidationError{Field: "target", Reason: fmt.Sprintf("%s lies outside the grid", to)}
		return domain.MoveResult{}, &domain.CommandError{Command: domain.CommandMoveBot, Err: err}
	}
	return execute(ctx, c, domain.CommandMoveBot, id, func(ctx context.Context) (domain.MoveResult, error) {
		return c.backend.MoveBot(ctx, id, to)
	})
}

// UpdateOrderStatus sets the status of order id.
func (c *Coordinator) UpdateOrderStatus(ctx context.Context, id int, status domain.OrderStatus) (domain.Order, error) {
	parsed, err := domain.ParseOrderStatus(string(status))
	if err != nil {
		return domain.Order{}, &domain.CommandError{Command: domain.CommandUpdateOrderStatus, Err: err}
	}
	return execute(ctx, c, domain.CommandUpdateOrderStatus, id, func(ctx context.Context) (domain.Order, error) {
		return c.backend.UpdateOrderStatus(ctx, id, parsed)
	})
}

// CancelOrder cancels order id.
func (c *Coordinator) CancelOrder(ctx context.Context, id int) (domain.Message, error) {
	return execute(ctx, c, domain.CommandCancelOrder, id, func(ctx context.Context) (domain.Message, error) {
		return c.backend.CancelOrder(ctx, id)
	})
}

// RebalanceOrders asks the backend to redistribute pending orders.
func (c *Coordinator) RebalanceOrders(ctx context.Context) (domain.RebalanceResult, error) {
	return execute(ctx, c, domain.CommandRebalanceOrders, 0, c.backend.Rebalance)
}

// StartAutoMovement starts the backend's automatic bot driver.
func (c *Coordinator) StartAutoMovement(ctx context.Context) (domain.AutoMovementToggle, error) {
	return execute(ctx, c, domain.CommandStartAutoMovement, 0, c.backend.StartAutoMovement)
}

// StopAutoMovement stops the backend's automatic bot driver.
func (c *Coordinator) StopAutoMovement(ctx context.Context) (domain.AutoMovementToggle, error) {
	return execute(ctx, c, domain.CommandStopAutoMovement, 0, c.backend.StopAutoMovement)
}

func execute[T any](ctx context.Context, c *Coordinator, cmd domain.Command, id int, call func(context.Context) (T, error)) (T, error) {
	ctx, span := c.tracer.Start(ctx, "command "+string(cmd), ports.WithAttribute("command", string(cmd)))
	defer span.End()
	if id > 0 {
		span.SetAttribute("target.id", id)
	}

	tries := uint(1)
	if cmd.Idempotent() {
		tries = 2
	}

	v, err := backoff.Retry(ctx, func() (T, error) {
		v, err := call(ctx)
		if err != nil && !errors.Is(err, domain.ErrNetwork) {
			return v, backoff.Permanent(err)
		}
		return v, err
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(c.retryDelay)),
		backoff.WithMaxTries(tries),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.logger.Debug(fmt.Sprintf("%s failed, retrying once in %s: %v", cmd, next, err))
		}),
	)
	if err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			err = permanent.Err
		}
		span.RecordError(err)
		var zero T
		return zero, &domain.CommandError{Command: cmd, Err: err}
	}

	c.invalidate(Invalidations(cmd, id))
	return v, nil
}

// invalidate skips keys already covered by another key in the set.
func (c *Coordinator) invalidate(keys []domain.Key) {
	for _, key := range keys {
		covered := slices.ContainsFunc(keys, func(other domain.Key) bool {
			return other != key && other.Covers(key)
		})
		if !covered {
			c.invalidator.Invalidate(key)
		}
	}
}
