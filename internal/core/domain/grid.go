package domain

// NodeType is the topology class of a grid node.
type NodeType string

// Node types.
const (
	NodePlain      NodeType = "NODE"
	NodeHouse      NodeType = "HOUSE"
	NodeRestaurant NodeType = "RESTAURANT"
	NodeBotStation NodeType = "BOT_STATION"
)

// LocationType tells which end of an order an overlay marks.
type LocationType string

// Location types.
const (
	LocationPickup   LocationType = "pickup"
	LocationDelivery LocationType = "delivery"
)

// OrderOverlay is an order marker placed on its pickup or delivery cell.
type OrderOverlay struct {
	ID             int            `json:"id"`
	CustomerName   string         `json:"customer_name"`
	RestaurantType RestaurantType `json:"restaurant_type"`
	Status         OrderStatus    `json:"status"`
	BotID          *int           `json:"bot_id"`
	LocationType   LocationType   `json:"location_type"`
}

// BlockedDirections flags the edges leaving a node that are closed.
type BlockedDirections struct {
	Right bool `json:"right,omitempty"`
	Left  bool `json:"left,omitempty"`
	Down  bool `json:"down,omitempty"`
	Up    bool `json:"up,omitempty"`
}

// Any reports whether any edge is blocked.
func (b BlockedDirections) Any() bool {
	return b.Right || b.Left || b.Down || b.Up
}

// GridCell is one node of the grid resource.
type GridCell struct {
	X               int                `json:"x"`
	Y               int                `json:"y"`
	NodeType        NodeType           `json:"node_type"`
	IsDeliveryPoint bool               `json:"is_delivery_point"`
	IsRestaurant    bool               `json:"is_restaurant"`
	IsBotStation    bool               `json:"is_bot_station"`
	RestaurantType  *RestaurantType    `json:"restaurant_type"`
	Name            string             `json:"name"`
	Bots            []BotSummary       `json:"bots"`
	ActiveOrders    []OrderOverlay     `json:"active_orders"`
	BlockedPaths    *BlockedDirections `json:"blocked_paths,omitempty"`
}

// MapGrid is the grid resource: topology keyed by "x,y" plus live counters.
type MapGrid struct {
	Grid         map[string]GridCell `json:"grid"`
	GridSize     int                 `json:"grid_size"`
	TotalNodes   int                 `json:"total_nodes"`
	TotalBots    int                 `json:"total_bots"`
	ActiveOrders int                 `json:"active_orders"`
}

// POIKind classifies the point of interest on a cell.
type POIKind uint8

// Point-of-interest kinds.
const (
	POINone POIKind = iota
	POIRestaurant
	POIDeliveryPoint
	POIBotStation
)

func (k POIKind) String() string {
	switch k {
	case POIRestaurant:
		return "restaurant"
	case POIDeliveryPoint:
		return "delivery point"
	case POIBotStation:
		return "bot station"
	default:
		return "none"
	}
}

// PointOfInterest is the static marker of a cell.
type PointOfInterest struct {
	Kind       POIKind
	Restaurant RestaurantType
}

// Cell is the projected view of a single coordinate.
type Cell struct {
	Coord     Coord
	Name      string
	POI       PointOfInterest
	Occupants []BotSummary
	Overlays  []OrderOverlay
	Blocked   BlockedDirections
}

// Occupied reports whether at least one bot is in the cell.
func (c *Cell) Occupied() bool {
	return len(c.Occupants) > 0
}

// FirstOccupant returns the bot that represents the cell by convention.
func (c *Cell) FirstOccupant() (BotSummary, bool) {
	if len(c.Occupants) == 0 {
		return BotSummary{}, false
	}
	return c.Occupants[0], true
}
