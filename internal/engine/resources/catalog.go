// Package resources maps resource keys to backend fetchers and refresh policies.
package resources

import (
	"context"
	"maps"
	"sync"

	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports"
	"go.trai.ch/eagroute/internal/engine/store"
)

var _ store.Source = (*Catalog)(nil)

// Catalog resolves keys against a Backend.
type Catalog struct {
	backend ports.Backend

	mu       sync.RWMutex
	policies map[domain.Family]domain.Policy
}

// NewCatalog creates a Catalog. Families missing from policies use the defaults.
func NewCatalog(backend ports.Backend, policies map[domain.Family]domain.Policy) *Catalog {
	c := &Catalog{backend: backend, policies: domain.DefaultPolicies()}
	maps.Copy(c.policies, policies)
	return c
}

// SetPolicies replaces the policies used for keys resolved from now on.
func (c *Catalog) SetPolicies(policies map[domain.Family]domain.Policy) {
	merged := domain.DefaultPolicies()
	maps.Copy(merged, policies)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.policies = merged
}

// Policies returns a copy of the current policies.
func (c *Catalog) Policies() map[domain.Family]domain.Policy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.policies)
}

// Policy returns the policy of one family.
func (c *Catalog) Policy(f domain.Family) domain.Policy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.policies[f]
}

// Resolve implements store.Source.
func (c *Catalog) Resolve(key domain.Key) (store.Resource, error) {
	ref, err := domain.ParseKey(key)
	if err != nil {
		return store.Resource{}, err
	}
	return store.Resource{
		Family: ref.Family,
		Fetch:  c.fetcher(ref),
		Policy: c.Policy(ref.Family),
	}, nil
}

//nolint:cyclop // one case per resource family
func (c *Catalog) fetcher(ref domain.Ref) func(context.Context) (any, error) {
	b := c.backend
	id := ref.ID

	switch ref.Family {
	case domain.FamilyHealth:
		return erase(b.Health)
	case domain.FamilyGrid:
		return erase(b.Grid)
	case domain.FamilyRestaurants:
		return erase(b.Restaurants)
	case domain.FamilyDeliveryPoints:
		return erase(b.DeliveryPoints)
	case domain.FamilyStats:
		return erase(b.Stats)
	case domain.FamilyBlockedPaths:
		return erase(b.BlockedPaths)
	case domain.FamilyBots:
		return erase(b.Bots)
	case domain.FamilyBot:
		return erase(func(ctx context.Context) (domain.Bot, error) { return b.Bot(ctx, id) })
	case domain.FamilyBotRoute:
		return erase(func(ctx context.Context) (domain.BotRoute, error) { return b.BotRoute(ctx, id) })
	case domain.FamilyBotOrders:
		return erase(func(ctx context.Context) ([]domain.Order, error) { return b.BotOrders(ctx, id) })
	case domain.FamilyOrders:
		return erase(b.Orders)
	case domain.FamilyOrder:
		return erase(func(ctx context.Context) (domain.Order, error) { return b.Order(ctx, id) })
	case domain.FamilyOrdersByStatus:
		status := ref.Status
		return erase(func(ctx context.Context) ([]domain.Order, error) { return b.OrdersByStatus(ctx, status) })
	case domain.FamilyRouteOptimize:
		return erase(b.OptimizeRoutes)
	case domain.FamilyRouteEfficiency:
		return erase(b.Efficiency)
	case domain.FamilyAutoMovement:
		return erase(b.AutoMovementStatus)
	default:
		return func(context.Context) (any, error) {
			return nil, domain.ErrUnknownResource
		}
	}
}

// erase adapts a typed fetcher to the store's untyped signature.
func erase[T any](fn func(context.Context) (T, error)) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
