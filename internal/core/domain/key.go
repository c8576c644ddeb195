package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Key identifies a cached backend resource. Keys are slash-separated paths and
// form a hierarchy: a key covers itself and every key extending its path.
type Key string

// Fixed resource keys.
const (
	KeyHealth          Key = "health"
	KeyGrid            Key = "map/grid"
	KeyRestaurants     Key = "map/restaurants"
	KeyDeliveryPoints  Key = "map/delivery-points"
	KeyStats           Key = "map/stats"
	KeyBlockedPaths    Key = "map/blocked-paths"
	KeyBots            Key = "bots"
	KeyOrders          Key = "orders"
	KeyRouteOptimize   Key = "routes/optimize"
	KeyRouteEfficiency Key = "routes/efficiency"
	KeyAutoMovement    Key = "auto-movement"
)

// BotKey identifies a single bot.
func BotKey(id int) Key {
	return KeyBots + "/" + Key(strconv.Itoa(id))
}

// BotRouteKey identifies a bot's planned route.
func BotRouteKey(id int) Key {
	return BotKey(id) + "/route"
}

// BotOrdersKey identifies the orders carried by a bot.
func BotOrdersKey(id int) Key {
	return BotKey(id) + "/orders"
}

// OrderKey identifies a single order.
func OrderKey(id int) Key {
	return KeyOrders + "/" + Key(strconv.Itoa(id))
}

// OrdersByStatusKey identifies the orders filtered by status.
func OrdersByStatusKey(status OrderStatus) Key {
	return KeyOrders + "/status/" + Key(status)
}

// Covers reports whether invalidating k also invalidates other.
func (k Key) Covers(other Key) bool {
	if k == other {
		return true
	}
	return strings.HasPrefix(string(other), string(k)+"/")
}

// Segments splits the key into its path segments.
func (k Key) Segments() []string {
	if k == "" {
		return nil
	}
	return strings.Split(string(k), "/")
}

// Family groups keys that share a fetcher and a refresh policy.
type Family string

// Resource families.
const (
	FamilyHealth          Family = "health"
	FamilyGrid            Family = "grid"
	FamilyRestaurants     Family = "restaurants"
	FamilyDeliveryPoints  Family = "delivery_points"
	FamilyStats           Family = "stats"
	FamilyBlockedPaths    Family = "blocked_paths"
	FamilyBots            Family = "bots"
	FamilyBot             Family = "bot"
	FamilyBotRoute        Family = "bot_route"
	FamilyBotOrders       Family = "bot_orders"
	FamilyOrders          Family = "orders"
	FamilyOrder           Family = "order"
	FamilyOrdersByStatus  Family = "orders_by_status"
	FamilyRouteOptimize   Family = "route_optimize"
	FamilyRouteEfficiency Family = "route_efficiency"
	FamilyAutoMovement    Family = "auto_movement"
)

// Ref is a parsed key: its family plus the parameters the family takes.
type Ref struct {
	Family Family
	ID     int
	Status OrderStatus
}

var fixedFamilies = map[Key]Family{
	KeyHealth:          FamilyHealth,
	KeyGrid:            FamilyGrid,
	KeyRestaurants:     FamilyRestaurants,
	KeyDeliveryPoints:  FamilyDeliveryPoints,
	KeyStats:           FamilyStats,
	KeyBlockedPaths:    FamilyBlockedPaths,
	KeyBots:            FamilyBots,
	KeyOrders:          FamilyOrders,
	KeyRouteOptimize:   FamilyRouteOptimize,
	KeyRouteEfficiency: FamilyRouteEfficiency,
	KeyAutoMovement:    FamilyAutoMovement,
}

// ParseKey resolves a key to its family and parameters.
//
//nolint:cyclop // flat dispatch over the key grammar
func ParseKey(k Key) (Ref, error) {
	if family, ok := fixedFamilies[k]; ok {
		return Ref{Family: family}, nil
	}

	segments := k.Segments()
	unknown := zerr.With(ErrUnknownResource, "key", string(k))
	if len(segments) < 2 {
		return Ref{}, unknown
	}

	switch Key(segments[0]) {
	case KeyBots:
		id, err := parseID(segments[1])
		if err != nil {
			return Ref{}, unknown
		}
		switch {
		case len(segments) == 2:
			return Ref{Family: FamilyBot, ID: id}, nil
		case len(segments) == 3 && segments[2] == "route":
			return Ref{Family: FamilyBotRoute, ID: id}, nil
		case len(segments) == 3 && segments[2] == "orders":
			return Ref{Family: FamilyBotOrders, ID: id}, nil
		}
	case KeyOrders:
		if len(segments) == 3 && segments[1] == "status" {
			status, err := ParseOrderStatus(segments[2])
			if err != nil {
				return Ref{}, unknown
			}
			return Ref{Family: FamilyOrdersByStatus, Status: status}, nil
		}
		if len(segments) == 2 {
			id, err := parseID(segments[1])
			if err != nil {
				return Ref{}, unknown
			}
			return Ref{Family: FamilyOrder, ID: id}, nil
		}
	}
	return Ref{}, unknown
}

// ParseID parses a positive entity id.
func ParseID(s string) (int, error) {
	id, err := parseID(s)
	if err != nil {
		return 0, zerr.With(ErrInvalidID, "value", s)
	}
	return id, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
