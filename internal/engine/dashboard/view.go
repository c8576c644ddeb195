// Package dashboard assembles the operator view from cached store entries.
// Both the interactive and the linear surface render a View.
package dashboard

import (
	"cmp"
	"slices"
	"strings"

	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/engine/projection"
)

// Reader returns the current snapshot of a key without blocking.
type Reader interface {
	Read(key domain.Key) domain.Entry
}

// Keys are the resources a dashboard observes.
var Keys = []domain.Key{
	domain.KeyGrid,
	domain.KeyBots,
	domain.KeyOrders,
	domain.KeyStats,
	domain.KeyRestaurants,
	domain.KeyBlockedPaths,
	domain.KeyAutoMovement,
}

// PrimaryKeys decide connectivity and the loading state.
var PrimaryKeys = []domain.Key{domain.KeyGrid, domain.KeyOrders}

// Span name prefixes of store fetches and coordinator commands.
const (
	FetchSpanPrefix   = "fetch "
	CommandSpanPrefix = "command "
)

// offlineFailures is the consecutive failure count after which a resource
// that has loaded before counts as lost.
const offlineFailures = 2

// View is one consistent read of every observed resource.
type View struct {
	Projection projection.Projection
	Fleet      domain.FleetSummary
	Stats      domain.SystemStats
	HasStats   bool
	// Orders are sorted newest first.
	Orders       []domain.Order
	Restaurants  []domain.Restaurant
	Blocked      int
	Autopilot    domain.AutoMovementStatus
	HasAutopilot bool

	Loading bool
	Offline bool
	// LastErr is the latest failure of a primary resource, grid first.
	LastErr error
}

// Build reads every observed key from r.
func Build(r Reader) View {
	grid := r.Read(domain.KeyGrid)
	bots := r.Read(domain.KeyBots)
	orders := r.Read(domain.KeyOrders)

	v := View{
		Projection: projection.Build(projection.Input{Grid: grid, Bots: bots, Orders: orders}),
		Loading:    loading(grid) || loading(orders),
		Offline:    Offline(grid, orders),
		LastErr:    cmp.Or(grid.Err, orders.Err),
	}

	if stats, ok := domain.ValueOf[domain.SystemStats](r.Read(domain.KeyStats)); ok {
		v.Stats = stats
		v.HasStats = true
		v.Fleet = stats.Fleet()
	} else if list, ok := domain.ValueOf[[]domain.Bot](bots); ok {
		v.Fleet = domain.SummarizeFleet(list)
	}

	if list, ok := domain.ValueOf[[]domain.Order](orders); ok {
		v.Orders = slices.SortedFunc(slices.Values(list), func(a, b domain.Order) int {
			return cmp.Compare(b.ID, a.ID)
		})
	}
	if list, ok := domain.ValueOf[[]domain.Restaurant](r.Read(domain.KeyRestaurants)); ok {
		v.Restaurants = list
	}
	if blocked, ok := domain.ValueOf[domain.BlockedPaths](r.Read(domain.KeyBlockedPaths)); ok {
		v.Blocked = len(blocked.Segments())
	}
	if status, ok := domain.ValueOf[domain.AutoMovementStatus](r.Read(domain.KeyAutoMovement)); ok {
		v.Autopilot = status
		v.HasAutopilot = true
	}
	return v
}

func loading(e domain.Entry) bool {
	return !e.HasValue && (e.Status == domain.StatusIdle || e.Status == domain.StatusLoading)
}

// Offline reports whether the backend counts as unreachable: both primary
// resources failed repeatedly, or either failed before it ever loaded.
func Offline(grid, orders domain.Entry) bool {
	neverLoaded := func(e domain.Entry) bool {
		return e.Status == domain.StatusErrored && !e.HasValue
	}
	if neverLoaded(grid) || neverLoaded(orders) {
		return true
	}
	lost := func(e domain.Entry) bool {
		return e.Status == domain.StatusErrored && e.Failures >= offlineFailures
	}
	return lost(grid) && lost(orders)
}

// ActiveOrders returns the orders still being worked on, newest first.
func (v *View) ActiveOrders() []domain.Order {
	var out []domain.Order
	for _, o := range v.Orders {
		if o.Status.Active() {
			out = append(out, o)
		}
	}
	return out
}

// RestaurantOf returns the pickup coordinate of the first restaurant of type t.
func (v *View) RestaurantOf(t domain.RestaurantType) (domain.Coord, bool) {
	for _, r := range v.Restaurants {
		if r.RestaurantType == t {
			return domain.Coord{X: r.X, Y: r.Y}, true
		}
	}
	return domain.Coord{}, false
}

// Notable reports whether an activity belongs in the feed: every finished
// command and every failed fetch. Successful polls are left out.
func Notable(a domain.Activity) bool {
	switch {
	case strings.HasPrefix(a.Name, CommandSpanPrefix):
		return true
	case strings.HasPrefix(a.Name, FetchSpanPrefix):
		return a.Err != nil
	default:
		return false
	}
}
